package data

// Platform labels observed in the most_played_on column.
const (
	PlatformSpotify = "Spotify"
	PlatformYoutube = "Youtube"
)

// Track holds one row of the denormalized dataset: one row per
// (artist, track, album, video) combination, with artist, album, and
// channel names repeated per row. The table has no primary key, so
// duplicate rows are expected and queries that count or sum per track
// deduplicate with DISTINCT or grouping.
//
// Numeric and boolean columns are nullable in the source data, so they
// are pointers here; nil means the value was absent.
type Track struct {
	Artist    string
	Name      string `gorm:"column:track"`
	Album     string
	AlbumType string

	// Audio features. The bounded ones (danceability, energy,
	// acousticness, instrumentalness, liveness, speechiness, valence)
	// lie in [0, 1] when present; nothing enforces that.
	Danceability     *float64
	Energy           *float64
	Loudness         *float64
	Speechiness      *float64
	Acousticness     *float64
	Instrumentalness *float64
	Liveness         *float64
	Valence          *float64
	Tempo            *float64
	DurationMin      *float64
	EnergyLiveness   *float64

	// Video metadata from the youtube side of the dataset.
	Title         string
	Channel       string
	Licensed      *bool
	OfficialVideo *bool

	// Engagement counts. Views is a real number in the source schema;
	// the others are whole numbers.
	Views    *float64
	Likes    *int64
	Comments *int64
	Stream   *int64

	MostPlayedOn string
}

// Float, Int, and Bool build pointers for nullable columns in literals.
func Float(v float64) *float64 { return &v }
func Int(v int64) *int64       { return &v }
func Bool(v bool) *bool        { return &v }
