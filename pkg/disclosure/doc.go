// Package disclosure decides what an admin caller may see of a
// configuration setting.
//
// Every setting carries a Classification. Public settings are returned
// verbatim when set; Secret settings only ever reveal whether they are set.
// Absence of configuration is normal data, not an error, so Disclose never
// fails.
package disclosure
