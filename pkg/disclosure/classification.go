package disclosure

//go:generate go run github.com/dmarkham/enumer -type Classification -transform lower -json -output classification.gen.go

// Classification determines whether a setting's value may ever be returned
// verbatim. It is supplied explicitly by the caller; it is never inferred
// from the setting's name.
type Classification int

const (
	Public Classification = iota
	Secret
)
