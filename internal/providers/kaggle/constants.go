package kaggle

const (
	providerName = "kaggle"

	defaultBaseURL     = "https://www.kaggle.com/api/v1"
	defaultDataset     = "eoinamoore/historical-nba-data-and-player-box-scores"
	defaultGamesFile   = "PlayerStatistics.csv"
	defaultPlayersFile = "Players.csv"
)
