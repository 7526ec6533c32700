package schema

type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

const (
	HeightAsc  = "HEIGHT_ASC"
	HeightDesc = "HEIGHT_DESC"
)

// Token returns the gateway sort enum. Anything but SortAsc sorts descending.
func (s Sort) Token() string {
	if s == SortAsc {
		return HeightAsc
	}
	return HeightDesc
}
