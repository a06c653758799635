// Package std_msgs holds the subset of std_msgs used by ros-z examples.
package std_msgs
