// Package geometry_msgs holds Point, Quaternion and Pose.
package geometry_msgs
