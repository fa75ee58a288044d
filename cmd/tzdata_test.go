package cmd

// Embed the IANA database so zone tests pass on hosts without zoneinfo.
import _ "time/tzdata"
