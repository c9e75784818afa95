package common

import (
	"hash/fnv"
	"strings"
)

// GenerateIDFromPath takes an absolute path and converts it into a numeric ID;
// this is used by compilation units to generate their unique IDs
func GenerateIDFromPath(abspath string) uint {
	h := fnv.New32a()
	h.Write([]byte(abspath))
	return uint(h.Sum32())
}

// JoinPath joins the segments of a path for display
func JoinPath(segments []string) string {
	return strings.Join(segments, PathSeparator)
}
