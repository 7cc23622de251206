// Package debugx renders values as framed JSON blocks for debugging.
//
// Package: debugx
// Title: Debug Printer
// Description: Renders a value as a block made of an upper-case centered header,
//              the value as indented JSON and a footer rule. Rendering is pure;
//              writing the block is a separate step with an injected writer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
//
// # Layout
//
//	debugx.Render(map[string]int{"a": 1}, debugx.Options{Header: "state", Separator: "=", Length: 20})
//
// produces
//
//	
//	====== STATE =======
//	{
//	    "a": 1
//	}
//	====================
//
// The block starts and ends with a newline. Values that cannot be encoded as JSON
// leave the body empty.
package debugx
