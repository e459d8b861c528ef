package bookindex // import "kastelo.dev/bookindex"

// DefaultBook is the book used for lines that don't name one.
const DefaultBook = "1"

// Header is the first row of every generated sheet.
var Header = []string{"Topic", "Description", "Page", "Book"}

// Row is one page reference of an index topic. Description is always
// empty; the column is there to be filled in by hand later.
type Row struct {
	Topic       string
	Description string
	Page        string
	Book        string
}

// Strings returns the row as cell values in Header order.
func (r Row) Strings() []string {
	return []string{r.Topic, r.Description, r.Page, r.Book}
}
