package domain

// Field names the API reads from otherwise free-form documents.
const (
	FieldID              = "_id"
	FieldTitle           = "title"
	FieldCategory        = "category"
	FieldLongDescription = "longDescription"
	FieldCount           = "count"
	FieldEmail           = "email"
	FieldBlogID          = "blog_id"
)

// Document is a schemaless record as stored and returned by the API.
// Posts, wishlist items and comments are all Documents.
type Document map[string]any

// String returns the value of key when it holds a string.
func (d Document) String(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithoutID returns a shallow copy of d with any client supplied _id removed.
// Stores assign identifiers; the body never chooses one.
func (d Document) WithoutID() Document {
	out := d.Clone()
	delete(out, FieldID)
	return out
}
