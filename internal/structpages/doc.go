// Package structpages maps a tree of page structs onto HTTP routes.
//
// Each field tagged with `route:"[METHOD] /path [Title]"` becomes a page. A page
// either implements ServeHTTP or exposes component methods (anything returning
// a value with Render(context.Context, io.Writer) error, such as templ.Component).
// Arguments for component, props and handler methods are injected by type from
// the values passed to [StructPages.MountPages].
package structpages
