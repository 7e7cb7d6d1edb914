package config

import (
	"fmt"
)

// Verify sets how the registry checks of error sets are reported.
type Verify int

const (
	VerifyInvalid Verify = iota

	// VerifyOff disables registry checks.
	VerifyOff

	// VerifyWarn reports failed checks as warnings.
	VerifyWarn

	// VerifyError reports failed checks as errors, files holding them are not written.
	VerifyError
)

var verifyValueMap = map[Verify]string{
	VerifyOff:   "off",
	VerifyWarn:  "warn",
	VerifyError: "error",
}

func (v Verify) String() string {
	s, ok := verifyValueMap[v]
	if !ok {
		return fmt.Sprintf("invalid(%d)", v)
	}

	return s
}

// MarshalText to render the value back into configs.
func (v Verify) MarshalText() ([]byte, error) {
	if _, ok := verifyValueMap[v]; !ok {
		return nil, fmt.Errorf("invalid verify mode %d", v)
	}

	return []byte(v.String()), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (v *Verify) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, s := range verifyValueMap {
		if s == text {
			*v = k
			return nil
		}
	}

	return fmt.Errorf("unknown verify mode %q", text)
}

// Passthrough sets what happens to source set variants an inherited block
// neither lists nor handles.
type Passthrough int

const (
	PassthroughInvalid Passthrough = iota

	// PassthroughExplicit demands every source variant to be listed.
	PassthroughExplicit

	// PassthroughImplicit passes unlisted source variants through.
	PassthroughImplicit
)

var passthroughValueMap = map[Passthrough]string{
	PassthroughExplicit: "explicit",
	PassthroughImplicit: "implicit",
}

func (p Passthrough) String() string {
	v, ok := passthroughValueMap[p]
	if !ok {
		return fmt.Sprintf("invalid(%d)", p)
	}

	return v
}

// MarshalText to render the value back into configs.
func (p Passthrough) MarshalText() ([]byte, error) {
	if _, ok := passthroughValueMap[p]; !ok {
		return nil, fmt.Errorf("invalid passthrough mode %d", p)
	}

	return []byte(p.String()), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (p *Passthrough) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range passthroughValueMap {
		if v == text {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown passthrough mode %q", text)
}
