package domain

import "regexp"

// Conditional directory names embed a template marker like
// "{% if auth %}auth{% endif %}". The captured identifier is the config
// key that must be enabled for the component to be materialized.
var condKeyPattern = regexp.MustCompile(`\{%\s*if\s+(\w+)\s*%\}.*?\{%\s*endif\s*%\}`)

// ExtractConfigKey returns the config key embedded in a conditional
// directory name. The second return is false when the name carries no
// marker, meaning the component is always included. Irregular whitespace
// inside the marker is tolerated.
func ExtractConfigKey(dirname string) (string, bool) {
	match := condKeyPattern.FindStringSubmatch(dirname)
	if match == nil {
		return "", false
	}
	return match[1], true
}
