package config

import (
	"github.com/duke-git/lancet/v2/slice"
	"github.com/tidwall/gjson"
)

// modelFields are the schema keys whose values must be whitelisted models.
var modelFields = []string{"extractionModel", "solutionModel", "debuggingModel"}

// ValidBytes reports whether raw holds a configuration conforming to the
// current schema. Checks run in order and short-circuit on first failure:
// parseable JSON object, key set exactly equal to the schema key set, known
// provider, every model field whitelisted for that provider.
//
// The exact key-set match is what invalidates files written by older schema
// versions without an explicit migration step. Garbage input is invalid,
// never a panic.
func ValidBytes(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return false
	}

	var keys []string
	root.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	if len(keys) != len(configKeys) {
		return false
	}
	for _, key := range configKeys {
		if !slice.Contain(keys, key) {
			return false
		}
	}

	provider := Provider(root.Get("apiProvider").String())
	if !KnownProvider(provider) {
		return false
	}

	for _, field := range modelFields {
		if !WhitelistedModel(provider, root.Get(field).String()) {
			return false
		}
	}

	return true
}
