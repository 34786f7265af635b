package components

import (
	cfg "github.com/automoto/donut-gather/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type RunningState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Running = donburi.NewComponentType[RunningState]()
