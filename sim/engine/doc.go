// Package engine implements the robot grid simulation core.
//
// The engine package holds the three pieces of the simulation state machine:
//   - Grid: bounds and obstacle set, with optional expansion
//   - Robot: position, 8-direction heading, battery, and move counter
//   - Simulation: the single-owner session tying them together and
//     interpreting text command lines against them
//
// Commands are whitespace-separated token lines ("forward 2",
// "diagonal northeast", "obstacle 3 3", ...). Execute dispatches the verb
// through a declarative table, validates arguments, applies the action, and
// returns a Result carrying the outcome message or a kind-tagged error.
// Failed commands never mutate state, with one documented exception: a
// multi-step forward keeps the unit steps that completed before the failure.
//
// Usage:
//
//	sim, err := engine.NewSimulation(engine.DefaultScenario())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res := sim.Execute("forward 2")
//	fmt.Println(res.Message)
//	fmt.Println(sim.RenderGrid())
//
// The package does no I/O, spawns no goroutines, and takes no locks. A
// Simulation is owned by a single caller; concurrent fronts-ends must give
// each user their own instance or serialize access above this package.
package engine
