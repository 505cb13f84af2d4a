package domain

// Player holds the progression and currency of the single tenant user.
type Player struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
	XP       int    `json:"xp"`
	Coins    int    `json:"gatcha_coins"`
}
