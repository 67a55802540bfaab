package detect

import (
	"strings"

	"github.com/poindexter12/maxwells-wallet/internal/format"
)

// Hint is the classifier's verdict for a single column. Confidence is a
// deterministic 0.0-1.0 score used for tie-breaking, not a probability.
type Hint struct {
	Ref        format.ColumnRef
	Role       format.Role
	Confidence float64
}

// sampleWindow bounds how many data rows the classifier inspects per column.
const sampleWindow = 25

const (
	confExactName    = 0.9
	confPartialName  = 0.7
	confStrongValues = 0.8
	confWeakValues   = 0.5
	confCorroborated = 0.1
)

// roleVocab maps semantic roles to header-name evidence. Roles are evaluated
// in this order; the first match wins, so more specific vocabulary sits
// higher in each list.
var roleVocab = []struct {
	role     format.Role
	exact    []string
	contains []string
}{
	{
		role:     format.RoleDate,
		exact:    []string{"date", "data", "datetime"},
		contains: []string{"date"},
	},
	{
		role:     format.RoleAmount,
		exact:    []string{"amount", "montante", "value"},
		contains: []string{"amount", "debit", "credit"},
	},
	{
		role:     format.RoleReference,
		exact:    []string{"reference", "id", "ref"},
		contains: []string{"reference", "transaction id", "check or slip"},
	},
	{
		role:     format.RoleDescription,
		exact:    []string{"description", "details", "memo", "narrative"},
		contains: []string{"descri"},
	},
	{
		role:     format.RoleMerchant,
		exact:    []string{"merchant", "payee", "name"},
		contains: []string{"merchant"},
	},
	{
		role:     format.RoleCategory,
		exact:    []string{"category", "categoria"},
		contains: []string{"category"},
	},
	{
		role:     format.RoleAccount,
		exact:    []string{"account", "account #"},
		contains: []string{"account", "card member", "card no"},
	},
}

// ClassifyColumns assigns a semantic role to every column, combining a
// name-based vocabulary match with value-shape sampling over the data rows.
// A column with neither signal (or no data at all) comes back RoleUnknown
// with zero confidence rather than failing.
func ClassifyColumns(header []string, rows [][]string) []Hint {
	hints := make([]Hint, len(header))

	for i, rawName := range header {
		name := strings.TrimSpace(rawName)

		ref := format.ColIndex(i)
		if name != "" {
			ref = format.Col(name)
		}

		role, conf := classify(name, columnSamples(rows, i))
		hints[i] = Hint{Ref: ref, Role: role, Confidence: conf}
	}

	return hints
}

func columnSamples(rows [][]string, col int) []string {
	var samples []string

	for r, row := range rows {
		if r >= sampleWindow {
			break
		}

		if col >= len(row) {
			continue
		}

		if v := strings.TrimSpace(row[col]); v != "" {
			samples = append(samples, v)
		}
	}

	return samples
}

func classify(name string, samples []string) (format.Role, float64) {
	nameRole, nameConf := roleFromName(name)
	valueRole, valueConf := roleFromValues(samples)

	switch {
	case nameRole == format.RoleUnknown && valueRole == format.RoleUnknown:
		return format.RoleUnknown, 0
	case nameRole == format.RoleUnknown:
		return valueRole, valueConf
	case valueRole == format.RoleUnknown:
		return nameRole, nameConf
	case nameRole == valueRole:
		conf := nameConf + confCorroborated
		if conf > 1 {
			conf = 1
		}

		return nameRole, conf
	}

	// The signals disagree. Value shape wins over a weak or ambiguous name
	// match: a single-letter header that holds dates is a date column.
	if nameConf < confExactName && valueConf >= nameConf {
		return valueRole, valueConf
	}

	return nameRole, nameConf
}

func roleFromName(name string) (format.Role, float64) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return format.RoleUnknown, 0
	}

	for _, v := range roleVocab {
		for _, tok := range v.exact {
			if name == tok {
				return v.role, confExactName
			}
		}
	}

	for _, v := range roleVocab {
		for _, tok := range v.contains {
			if strings.Contains(name, tok) {
				return v.role, confPartialName
			}
		}
	}

	return format.RoleUnknown, 0
}

func roleFromValues(samples []string) (format.Role, float64) {
	if len(samples) == 0 {
		return format.RoleUnknown, 0
	}

	dates, amounts := 0, 0

	for _, s := range samples {
		switch {
		case looksLikeDate(s):
			dates++
		case looksLikeAmount(s):
			amounts++
		}
	}

	total := len(samples)

	switch {
	case dates == total:
		return format.RoleDate, confStrongValues
	case amounts == total:
		return format.RoleAmount, confStrongValues
	case dates*5 >= total*4:
		return format.RoleDate, confWeakValues
	case amounts*5 >= total*4:
		return format.RoleAmount, confWeakValues
	}

	return format.RoleUnknown, 0
}
