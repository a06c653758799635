// Package interfaces holds the CDR type support of the interfaces message
// package: DetectionInfo and the unbounded DetectionInfoArray that carries
// one frame of detector output.
//
// Importing the package registers both types with the rosz default registry.
package interfaces

//go:generate go run ../../../ros-z-codegen-go --input ../../idl/manifest.yaml --output ..
