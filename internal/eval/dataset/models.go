package dataset

// LabeledRoom is one row of the recommendation evaluation dataset: a room
// description plus the catalog items a designer marked as good picks.
type LabeledRoom struct {
	RoomID      string   `json:"room_id" parquet:"room_id"`
	RoomType    string   `json:"room_type" parquet:"room_type"`
	Style       string   `json:"style" parquet:"style"`
	SpaceSize   string   `json:"space_size" parquet:"space_size"`
	ColorScheme string   `json:"color_scheme" parquet:"color_scheme"`
	ExpectedIDs []string `json:"expected_ids" parquet:"expected_ids,list"`
}
