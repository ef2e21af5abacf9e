package rules

import (
	"fmt"
	"strings"
)

// ParseOrigin resolves user-facing origin names, accepting the common
// aliases used when talking about message direction.
func ParseOrigin(input string) (Origin, error) {
	switch normalize(input) {
	case "incoming", "in", "received":
		return OriginIncoming, nil
	case "outgoing", "out", "sent":
		return OriginOutgoing, nil
	case "self", "sent-to-self", "private", "internal":
		return OriginSelf, nil
	default:
		return 0, fmt.Errorf("unclassifiable message: unknown origin %q (want incoming, outgoing, or self)", input)
	}
}

// ParseKind resolves user-facing kind names.
func ParseKind(input string) (Kind, error) {
	switch normalize(input) {
	case "query", "q":
		return KindQuery, nil
	case "command", "c":
		return KindCommand, nil
	case "query+command", "query-command", "querycommand", "both", "qc":
		return KindQueryCommand, nil
	default:
		return 0, fmt.Errorf("unclassifiable message: unknown kind %q (want query, command, or query+command)", input)
	}
}

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
