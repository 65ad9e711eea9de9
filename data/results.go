package data

// Result rows for the query battery. Field names line up with the
// column aliases in the SQL so gorm can scan into them directly.

// AlbumTrack is one distinct (artist, album, track) combination.
type AlbumTrack struct {
	Artist string
	Album  string
	Track  string
}

// ArtistTrackCount is an artist with their count of distinct track
// names. Duplicate rows for the same track do not inflate the count.
type ArtistTrackCount struct {
	Artist string
	Tracks int64
}

// AlbumDanceability is an album with its average danceability across
// all rows where danceability is present.
type AlbumDanceability struct {
	Album           string
	AvgDanceability float64
}

// TrackEnergy is a track with its average energy across duplicate rows.
type TrackEnergy struct {
	Artist    string
	Track     string
	AvgEnergy float64
}

// VideoTotals holds per-track view and like sums for the two
// official-video query forms.
type VideoTotals struct {
	Track      string
	TotalViews float64
	TotalLikes float64
}

// PlatformStreams is the per-track pivot of stream counts by platform.
// A track missing one platform gets zero there, never null.
type PlatformStreams struct {
	Track             string
	StreamedOnSpotify float64
	StreamedOnYoutube float64
}

// RankedTrack is one row of the top-viewed-per-artist ranking. Position
// is a dense rank: tied view totals share a position and the next
// distinct total takes the immediately following integer.
type RankedTrack struct {
	Artist     string
	Track      string
	TotalViews float64
	Position   int64
}

// AlbumEnergySpread is an album with the max-minus-min energy across
// its tracks.
type AlbumEnergySpread struct {
	Album     string
	MaxEnergy float64
	MinEnergy float64
	Spread    float64
}

// RatioTrack is a row whose energy-to-liveness ratio cleared the
// threshold. Rows with a null or non-positive liveness never get here.
type RatioTrack struct {
	Artist   string
	Track    string
	Energy   float64
	Liveness float64
	Ratio    float64
}

// CumulativeLikes is one row of the running like-sum report, ordered by
// views descending with (artist, track) as the tie-break.
type CumulativeLikes struct {
	Artist       string
	Track        string
	Views        float64
	Likes        int64
	RunningLikes int64
}
