// Package errors provides coded, developer-facing errors for the hxo CLI.
//
// Each error carries a registered code (e.g. "HXO-E020"), a category, a
// short message and optional detail, source location and hint. Format
// renders the error for a terminal:
//
//	err := errors.New(errors.CodeTreeSyntax).
//	    WithOffset("tree.json", src, 42).
//	    WithSuggestion("Check for a trailing comma")
//
//	fmt.Print(err.Format())
//	// ERROR HXO-E020: Tree file is not valid JSON
//	//
//	//   tree.json:3:14
//	//
//	//       2 │   "tag": "div",
//	//   →   3 │   "props": {,
//	//         │              ^
//	//
//	//   Hint: Check for a trailing comma
//
// Errors wrap their cause, so errors.Is and errors.As see through them.
package errors
