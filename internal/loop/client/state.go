package client

// GameState is the screen a client is on.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // A session is running
	GameStateOver                      // GAME OVER shown, waiting for restart
	GameStateShutdown                  // Server is shutting down
	GameStateDone                      // Client is leaving
)

func (s GameState) String() string {
	switch s {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "over"
	case GameStateShutdown:
		return "shutdown"
	case GameStateDone:
		return "done"
	default:
		return "unknown"
	}
}
