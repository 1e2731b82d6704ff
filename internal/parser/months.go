package parser

import "strings"

// monthDisplay maps Indonesian and English month abbreviations to the
// canonical display form used in ETA strings. Indonesian spellings that
// differ from English keep their local form (MEI stays "Mei").
var monthDisplay = map[string]string{
	"JAN": "Jan",
	"FEB": "Feb",
	"MAR": "Mar",
	"APR": "Apr",
	"MEI": "Mei",
	"MAY": "May",
	"JUN": "Jun",
	"JUL": "Jul",
	"AGU": "Aug",
	"AUG": "Aug",
	"SEP": "Sep",
	"OKT": "Oct",
	"OCT": "Oct",
	"NOV": "Nov",
	"DES": "Dec",
	"DEC": "Dec",
}

// FormatETA renders a month token as `Mon 'YY`. Unrecognized tokens pass
// through uppercased with the year suffix appended.
func FormatETA(month, year string) string {
	token := strings.ToUpper(strings.TrimSpace(month))
	if display, ok := monthDisplay[token]; ok {
		return display + " '" + year
	}
	return token + " '" + year
}
