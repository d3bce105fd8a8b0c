package nbastats

type playByPlayResponse struct {
	Game playByPlayGame `json:"game"`
}

type playByPlayGame struct {
	GameID  string   `json:"gameId"`
	Actions []action `json:"actions"`
}

type action struct {
	ActionNumber int    `json:"actionNumber"`
	Period       int    `json:"period"`
	Clock        string `json:"clock"`
	TeamID       int64  `json:"teamId"`
	TeamTricode  string `json:"teamTricode"`
	PersonID     int64  `json:"personId"`
	PlayerName   string `json:"playerName"`
	ActionType   string `json:"actionType"`
	SubType      string `json:"subType"`
	Description  string `json:"description"`
	ShotResult   string `json:"shotResult"`
	ScoreHome    string `json:"scoreHome"`
	ScoreAway    string `json:"scoreAway"`
}

type scheduleResponse struct {
	LeagueSchedule leagueSchedule `json:"leagueSchedule"`
}

type leagueSchedule struct {
	SeasonYear string         `json:"seasonYear"`
	GameDates  []scheduleDate `json:"gameDates"`
}

type scheduleDate struct {
	GameDate string          `json:"gameDate"`
	Games    []scheduledGame `json:"games"`
}

type scheduledGame struct {
	GameID string `json:"gameId"`
}
