package enrich

import (
	"strings"

	"github.com/econolens/newsflow/core"
)

const sourceSuffix = ".json"

// Eligible reports whether a listed key is a staged article the pipeline
// should process. A key qualifies when it ends with the staging suffix and
// no path segment names an output stage; derived artifacts live under a
// stage segment and must never be re-read as inputs, even when the
// destination prefix overlaps the source prefix.
//
// Ineligible keys are benign skips. They are counted by the driver but
// never fetched.
func Eligible(key string) bool {
	if !strings.HasSuffix(key, sourceSuffix) {
		return false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == core.StageOriginal.String() || segment == core.StageSummarized.String() {
			return false
		}
	}
	return true
}
