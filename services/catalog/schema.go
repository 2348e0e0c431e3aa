package catalog

// Field kinds; multipart form values are coerced before storage.
const (
	KindString = "string"
	KindFloat  = "float"
	KindInt    = "int"
	KindBool   = "bool"
)

// Field describes one stored attribute of a catalog entity.
type Field struct {
	Name     string
	Kind     string
	Required bool
}

// Schema drives the generic catalog service for one entity type: its
// collection in the keyed store, its media bucket, and its field set.
type Schema struct {
	Collection string
	Bucket     string
	KeyPrefix  string // storage key prefix for uploaded media
	Label      string // human label used in messages, e.g. "Event"
	Fields     []Field
	Gallery    bool // accepts multiple media files under "media"
}

// Schemas for the five media-bearing entity types. Collection and bucket
// names match the live data.
var (
	Events = Schema{
		Collection: "events",
		Bucket:     "event-images",
		KeyPrefix:  "events",
		Label:      "Event",
		Gallery:    true,
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true},
			{Name: "description", Kind: KindString},
			{Name: "location", Kind: KindString},
			{Name: "tag", Kind: KindString},
			{Name: "ageLimit", Kind: KindString},
			{Name: "availableSpots", Kind: KindInt},
			{Name: "difficulty", Kind: KindString},
			{Name: "eventDate", Kind: KindString},
		},
	}

	Articles = Schema{
		Collection: "articles",
		Bucket:     "article-images",
		KeyPrefix:  "articles",
		Label:      "Article",
		Gallery:    true,
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true},
			{Name: "subtitle", Kind: KindString, Required: true},
			{Name: "text", Kind: KindString, Required: true},
		},
	}

	Members = Schema{
		Collection: "members",
		Bucket:     "member-images",
		KeyPrefix:  "members",
		Label:      "Member",
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true},
			{Name: "description", Kind: KindString},
			{Name: "role", Kind: KindString},
			{Name: "additionalInfo", Kind: KindString},
		},
	}

	Merchandise = Schema{
		Collection: "merchandise",
		Bucket:     "merchandise-images",
		KeyPrefix:  "merchandise",
		Label:      "Merchandise",
		Fields: []Field{
			{Name: "name", Kind: KindString, Required: true},
			{Name: "price", Kind: KindFloat},
			{Name: "quantity", Kind: KindInt},
			{Name: "available", Kind: KindBool},
		},
	}

	PrivateTours = Schema{
		Collection: "private_tours",
		Bucket:     "tour-images",
		KeyPrefix:  "private_tours",
		Label:      "Private tour",
		Fields: []Field{
			{Name: "title", Kind: KindString, Required: true},
			{Name: "description", Kind: KindString},
			{Name: "location", Kind: KindString},
			{Name: "type", Kind: KindString},
			{Name: "min_ppl_nb", Kind: KindInt},
			{Name: "max_ppl_nb", Kind: KindInt},
			{Name: "starting_price", Kind: KindFloat},
		},
	}
)
