package redisadapter

import "strings"

// separator delimits the sections of a broker channel name. Namespace
// and room names must not contain it; that is a caller responsibility,
// not checked at runtime.
const separator = "#"

// namespaceChannel returns the channel carrying namespace-wide
// broadcasts: "<prefix>#<nsp>#".
func namespaceChannel(prefix, nsp string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(separator)
	b.WriteString(nsp)
	b.WriteString(separator)
	return b.String()
}

// roomChannel returns the channel carrying broadcasts targeted at a
// single room: "<prefix>#<nsp>#<room>#". Every room channel extends its
// namespace channel, so a single prefix match against the namespace
// channel accepts the namespace's whole channel family.
func roomChannel(prefix, nsp, room string) string {
	return namespaceChannel(prefix, nsp) + room + separator
}
