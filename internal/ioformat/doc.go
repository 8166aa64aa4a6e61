// Package ioformat reads the two bespoke text formats this system uses:
// the environment file (grid layout plus optional static pedestrians) and
// the auxiliary file (exit-sweep simulation sets). Both are line-oriented
// formats with no existing ecosystem parser, so parsing is done with
// bufio/strconv rather than a third-party format library.
package ioformat
