// Package filex provides the small set of file helpers needed to locate
// configuration files: existence checks, "~" and $VAR expansion, and a
// first-match lookup over candidate paths.
package filex
