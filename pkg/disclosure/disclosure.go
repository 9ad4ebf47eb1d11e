package disclosure

import "strings"

// Hints accompanying a disclosure record.
const (
	HintConfigured = "Currently configured"
	HintWithheld   = "Set (value withheld for security)"
	HintNotSet     = "Not set — update configuration"
)

// Record is the redacted view of one configuration setting returned to an
// admin caller. Value is nil whenever the setting is unset or classified
// Secret.
type Record struct {
	Value *string `json:"value"`
	IsSet bool    `json:"isSet"`
	Hint  string  `json:"hint"`
}

// Source resolves a setting name to its current raw value. ok is false when
// the setting was never provided.
type Source interface {
	Lookup(name string) (value string, ok bool)
}

// Disclose produces the disclosure record for a single setting. It reads the
// live value from src on every call; records are never cached.
//
// A setting counts as set iff its raw value exists and is non-empty after
// trimming surrounding whitespace. The value returned for a set Public
// setting is the raw value, untrimmed.
func Disclose(src Source, name string, class Classification) Record {
	raw, ok := src.Lookup(name)
	isSet := ok && strings.TrimSpace(raw) != ""

	if !isSet {
		return Record{IsSet: false, Hint: HintNotSet}
	}

	if class == Secret {
		return Record{IsSet: true, Hint: HintWithheld}
	}

	value := raw
	return Record{Value: &value, IsSet: true, Hint: HintConfigured}
}

// Setting names a disclosable configuration key and fixes its
// classification.
type Setting struct {
	Name           string
	Classification Classification
}

// Registry is the per-deployment list of disclosable settings, in display
// order. Classifying a setting here, rather than at each call site, means a
// future credential-like key must be classified at the point it is declared.
type Registry []Setting

// SystemVariables is the registry behind the admin system-variables view.
var SystemVariables = Registry{
	{Name: "MONITORED_URL", Classification: Public},
	{Name: "TELEGRAM_CHANNEL_ID", Classification: Public},
	{Name: "TELEGRAM_BOT_TOKEN", Classification: Secret},
}

// Disclose resolves every registered setting against src.
func (r Registry) Disclose(src Source) map[string]Record {
	records := make(map[string]Record, len(r))
	for _, setting := range r {
		records[setting.Name] = Disclose(src, setting.Name, setting.Classification)
	}
	return records
}

// ClassificationOf reports the registered classification for name.
func (r Registry) ClassificationOf(name string) (Classification, bool) {
	for _, setting := range r {
		if setting.Name == name {
			return setting.Classification, true
		}
	}
	return Public, false
}
