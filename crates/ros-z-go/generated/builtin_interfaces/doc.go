// Package builtin_interfaces holds the Time and Duration messages.
package builtin_interfaces
