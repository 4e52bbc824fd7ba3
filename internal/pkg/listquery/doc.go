// Package listquery implements the filter, sort and paginate pipeline shared
// by the catalog, order and inventory listings.
//
// A listing view owns a State value. Changing the search text, category,
// sort or page size through the State's With* methods sends the view back to
// page 1; Run clamps the requested page into range and hands back the State
// it actually rendered, so a view never points past its last page.
//
//	st := listquery.NewState(listquery.DefaultCatalogPerPage, listquery.SortTitleAsc)
//	st = st.WithSearch("dragon")
//	res, st := listquery.Run(books, catalogConfig, st)
package listquery
