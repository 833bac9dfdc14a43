package nbastats

import "time"

const providerName = "nbastats"

const (
	defaultBaseURL     = "https://stats.nba.com"
	defaultHTTPTimeout = 10 * time.Second

	scoreboardPath = "/stats/scoreboardv2"
	boxScorePath   = "/stats/boxscoresummaryv2"

	// feedDateLayout is the MM/DD/YYYY form the gamedate parameter expects.
	feedDateLayout = "01/02/2006"

	leagueID = "00"
)

// feedHeaders makes requests look like they come from a browser; the stats
// feed rejects bare clients. Accept-Encoding is deliberately left unset so
// net/http handles gzip transparently.
var feedHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 6.2; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/57.0.2987.133 Safari/537.36",
	"Dnt":             "1",
	"Accept-Language": "en",
	"Origin":          "http://stats.nba.com",
	"Referer":         "http://stats.nba.com/scores/",
}
