// Package filters implements the row predicates behind the grid's custom
// column filters.
package filters

import (
	"fmt"

	"github.com/andareed/dutyfree-helper/logging"
)

// MembersValue selects which rows the members filter lets through.
type MembersValue string

const (
	MembersAll     MembersValue = "all"
	MembersOnly    MembersValue = "members"
	NonMembersOnly MembersValue = "non-members"
)

// MembersModel is the configuration of a members filter. A nil *MembersModel
// means the filter is inactive.
type MembersModel struct {
	Value MembersValue `json:"value" yaml:"value"`
}

// PassMembers reports whether a row whose members field is field passes
// model. A nil field (missing from the API) only passes when the filter does
// not discriminate. Unknown values let every row through.
func PassMembers(model *MembersModel, field *bool) bool {
	if model == nil {
		return true
	}
	switch model.Value {
	case MembersOnly:
		return field != nil && *field
	case NonMembersOnly:
		logging.Debug("members filter: non-members branch")
		return field != nil && !*field
	default:
		return true
	}
}

// Label is the text shown for the value in the footer and filter summary.
func (v MembersValue) Label() string {
	switch v {
	case MembersOnly:
		return "Members Only"
	case NonMembersOnly:
		return "Non-Members Only"
	default:
		return "All Items"
	}
}

// Next cycles all -> members -> non-members -> all.
func (v MembersValue) Next() MembersValue {
	switch v {
	case MembersAll:
		return MembersOnly
	case MembersOnly:
		return NonMembersOnly
	default:
		return MembersAll
	}
}

func ParseMembersValue(s string) (MembersValue, error) {
	switch v := MembersValue(s); v {
	case MembersAll, MembersOnly, NonMembersOnly:
		return v, nil
	default:
		return "", fmt.Errorf("unknown members filter value %q", s)
	}
}
