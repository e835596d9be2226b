package platform

import (
	"strconv"
	"strings"

	"github.com/BrandonKowalski/showcase/pkg/showcase/constants"
)

// MotionPreference is the reduced-motion accessibility signal.
type MotionPreference interface {
	ReduceMotion() bool
}

// StaticMotion is a fixed preference, used for config and CLI overrides.
type StaticMotion bool

func (m StaticMotion) ReduceMotion() bool { return bool(m) }

// EnvMotion reads REDUCE_MOTION through Getenv.
// Unset or unparsable values mean "animate".
type EnvMotion struct {
	Getenv func(string) string
}

func (m EnvMotion) ReduceMotion() bool {
	v := strings.TrimSpace(m.Getenv(constants.ReduceMotionEnvVar))
	if v == "" {
		return false
	}
	reduce, err := strconv.ParseBool(v)
	return err == nil && reduce
}

// ResolveMotion picks the preference for this run. A non-empty override
// ("true"/"false") wins over the environment.
func ResolveMotion(override string, getenv func(string) string) (MotionPreference, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return EnvMotion{Getenv: getenv}, nil
	}
	reduce, err := strconv.ParseBool(override)
	if err != nil {
		return nil, err
	}
	return StaticMotion(reduce), nil
}
