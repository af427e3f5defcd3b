package rules

import (
	"github.com/fieldlog/fieldlog/internal/entity"
)

// ToggleResult reports whether a section toggle may still be changed, and
// what it currently holds.
type ToggleResult struct {
	Allowed      bool  `json:"allowed"`
	CurrentValue *bool `json:"currentValue,omitempty"`
}

// CanChangeToggle implements the write-once rule for section sign-off
// toggles: changeable only while unset; once true or false it is permanently
// locked for the report. The rule models a physical sign-off, so there is no
// programmatic undo.
func CanChangeToggle(r *entity.Report, section string) ToggleResult {
	if r.Toggles == nil {
		return ToggleResult{Allowed: true}
	}
	cur, ok := r.Toggles[section]
	if !ok || cur == nil {
		return ToggleResult{Allowed: true}
	}
	return ToggleResult{Allowed: false, CurrentValue: cur}
}

// SetToggle applies a toggle value after the write-once check. Returns the
// check result unchanged when the toggle is already locked.
func SetToggle(r *entity.Report, section string, value bool) ToggleResult {
	res := CanChangeToggle(r, section)
	if !res.Allowed {
		return res
	}
	if r.Toggles == nil {
		r.Toggles = make(map[string]*bool)
	}
	v := value
	r.Toggles[section] = &v
	return ToggleResult{Allowed: true, CurrentValue: &v}
}
