//
// Copyright 2024 The Goglyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logo

import (
	log "github.com/sirupsen/logrus"
)

// TurtleBackend is the external drawing collaborator spec.md §1/§4.6
// calls out of scope for the interpreter core: a side-effecting 2-D
// drawing surface exposing the fixed set of named turtle operations.
// The interpreter depends only on this interface; primitives.go never
// branches on which implementation is active.
type TurtleBackend interface {
	Forward(units float64)
	Backward(units float64)
	Right(degrees float64)
	Left(degrees float64)
	Circle(radius float64)
	SetPos(x, y float64)
	SetHeading(degrees float64)
	PenUp()
	PenDown()
	ShowTurtle()
	HideTurtle()
	Clear()
	Color(name string)
	BeginFill()
	EndFill()
	ExitOnClick()
	Speed(n float64)
}

// turtleState tracks position, heading and pen state common to both
// backends below, so "setpos"/"seth" compose correctly across calls
// even without a real display.
type turtleState struct {
	x, y    float64
	heading float64
	penDown bool
	visible bool
}

func newTurtleState() turtleState {
	return turtleState{penDown: true, visible: true}
}

// logTurtle logs every turtle call at debug level and keeps minimal
// state; it is the default backend, used whenever no graphical display
// is requested (and always by the test harness).
type logTurtle struct {
	turtleState
}

// NewLogTurtle constructs a TurtleBackend that records its calls to the
// package logger instead of drawing.
func NewLogTurtle() TurtleBackend {
	return &logTurtle{turtleState: newTurtleState()}
}

func (t *logTurtle) Forward(units float64) {
	log.WithField("units", units).Debug("turtle: forward")
	t.x += units
}
func (t *logTurtle) Backward(units float64) {
	log.WithField("units", units).Debug("turtle: backward")
	t.x -= units
}
func (t *logTurtle) Right(degrees float64) {
	log.WithField("degrees", degrees).Debug("turtle: right")
	t.heading -= degrees
}
func (t *logTurtle) Left(degrees float64) {
	log.WithField("degrees", degrees).Debug("turtle: left")
	t.heading += degrees
}
func (t *logTurtle) Circle(radius float64) {
	log.WithField("radius", radius).Debug("turtle: circle")
}
func (t *logTurtle) SetPos(x, y float64) {
	log.WithFields(log.Fields{"x": x, "y": y}).Debug("turtle: setpos")
	t.x, t.y = x, y
}
func (t *logTurtle) SetHeading(degrees float64) {
	log.WithField("degrees", degrees).Debug("turtle: seth")
	t.heading = degrees
}
func (t *logTurtle) PenUp() {
	log.Debug("turtle: penup")
	t.penDown = false
}
func (t *logTurtle) PenDown() {
	log.Debug("turtle: pendown")
	t.penDown = true
}
func (t *logTurtle) ShowTurtle() {
	log.Debug("turtle: showturtle")
	t.visible = true
}
func (t *logTurtle) HideTurtle() {
	log.Debug("turtle: hideturtle")
	t.visible = false
}
func (t *logTurtle) Clear() {
	log.Debug("turtle: clear")
}
func (t *logTurtle) Color(name string) {
	log.WithField("color", name).Debug("turtle: color")
}
func (t *logTurtle) BeginFill() { log.Debug("turtle: begin_fill") }
func (t *logTurtle) EndFill()   { log.Debug("turtle: end_fill") }
func (t *logTurtle) ExitOnClick() {
	log.Debug("turtle: exitonclick")
}
func (t *logTurtle) Speed(n float64) {
	log.WithField("n", n).Debug("turtle: speed")
}

// recordedCall is one entry of a recordingTurtle's path, useful for
// test assertions that want to inspect the sequence of turtle calls
// without a real display.
type recordedCall struct {
	Name string
	Args []float64
}

// recordingTurtle wraps the same state tracking as logTurtle but also
// appends each call to an in-memory path, exposed for the test harness.
type recordingTurtle struct {
	turtleState
	Path []recordedCall
}

// NewRecordingTurtle constructs a TurtleBackend that records its call
// sequence for later inspection.
func NewRecordingTurtle() *recordingTurtle {
	return &recordingTurtle{turtleState: newTurtleState()}
}

func (t *recordingTurtle) record(name string, args ...float64) {
	t.Path = append(t.Path, recordedCall{Name: name, Args: args})
}

func (t *recordingTurtle) Forward(units float64)  { t.record("forward", units); t.x += units }
func (t *recordingTurtle) Backward(units float64) { t.record("backward", units); t.x -= units }
func (t *recordingTurtle) Right(degrees float64)  { t.record("right", degrees); t.heading -= degrees }
func (t *recordingTurtle) Left(degrees float64)   { t.record("left", degrees); t.heading += degrees }
func (t *recordingTurtle) Circle(radius float64)  { t.record("circle", radius) }
func (t *recordingTurtle) SetPos(x, y float64) {
	t.record("setpos", x, y)
	t.x, t.y = x, y
}
func (t *recordingTurtle) SetHeading(degrees float64) {
	t.record("seth", degrees)
	t.heading = degrees
}
func (t *recordingTurtle) PenUp()   { t.record("penup"); t.penDown = false }
func (t *recordingTurtle) PenDown() { t.record("pendown"); t.penDown = true }
func (t *recordingTurtle) ShowTurtle() {
	t.record("showturtle")
	t.visible = true
}
func (t *recordingTurtle) HideTurtle() {
	t.record("hideturtle")
	t.visible = false
}
func (t *recordingTurtle) Clear()           { t.record("clear") }
func (t *recordingTurtle) Color(name string) { t.record("color") }
func (t *recordingTurtle) BeginFill()        { t.record("begin_fill") }
func (t *recordingTurtle) EndFill()          { t.record("end_fill") }
func (t *recordingTurtle) ExitOnClick()      { t.record("exitonclick") }
func (t *recordingTurtle) Speed(n float64)   { t.record("speed", n) }

// numArg coerces a single word argument to a float64, reusing the same
// integer-then-float contract as every other numeric primitive.
func numArg(v Value) (float64, error) {
	n, err := toNum(v.AsWord())
	if err != nil {
		return 0, err
	}
	return n.asFloat(), nil
}

// registerTurtlePrimitives installs the turtle-graphics surface named in
// spec.md §4.6, forwarding each call to env.Turtle(). Grounded on
// original_source/logo_primitives.py's load_turtle_graphics for the
// exact name/arity/alias surface; see the note on registerPrimitives
// about the "lt" alias collision this registration order preserves.
func registerTurtlePrimitives(reg registerFunc) {
	one := func(name string, arity int, fn PrimitiveFunc) { reg([]string{name}, arity, false, fn) }

	reg([]string{"forward", "fd"}, 1, false, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Forward(n)
		return NoneOutcome(), nil
	})
	reg([]string{"backward", "back", "bk"}, 1, false, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Backward(n)
		return NoneOutcome(), nil
	})
	one("right", 1, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Right(n)
		return NoneOutcome(), nil
	})
	// "left" and "lt" both name this primitive, and since it is
	// registered after the comparison group, "lt" ends up meaning
	// "left" rather than "lessp" — preserved quirk, see above.
	reg([]string{"left", "lt"}, 1, false, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Left(n)
		return NoneOutcome(), nil
	})
	one("circle", 1, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Circle(n)
		return NoneOutcome(), nil
	})
	reg([]string{"setpos", "setposition", "goto"}, 2, false, func(args []Value, env *Environment) (Outcome, error) {
		x, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		y, err := numArg(args[1])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().SetPos(x, y)
		return NoneOutcome(), nil
	})
	reg([]string{"seth", "setheading"}, 1, false, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().SetHeading(n)
		return NoneOutcome(), nil
	})
	reg([]string{"penup", "pu"}, 0, false, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().PenUp()
		return NoneOutcome(), nil
	})
	reg([]string{"pendown", "pd"}, 0, false, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().PenDown()
		return NoneOutcome(), nil
	})
	reg([]string{"showturtle", "st"}, 0, false, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().ShowTurtle()
		return NoneOutcome(), nil
	})
	reg([]string{"hideturtle", "ht"}, 0, false, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().HideTurtle()
		return NoneOutcome(), nil
	})
	one("clear", 0, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().Clear()
		return NoneOutcome(), nil
	})
	one("color", 1, func(args []Value, env *Environment) (Outcome, error) {
		env.Turtle().Color(args[0].AsWord())
		return NoneOutcome(), nil
	})
	one("begin_fill", 0, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().BeginFill()
		return NoneOutcome(), nil
	})
	one("end_fill", 0, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().EndFill()
		return NoneOutcome(), nil
	})
	one("exitonclick", 0, func(_ []Value, env *Environment) (Outcome, error) {
		env.Turtle().ExitOnClick()
		return NoneOutcome(), nil
	})
	one("speed", 1, func(args []Value, env *Environment) (Outcome, error) {
		n, err := numArg(args[0])
		if err != nil {
			return Outcome{}, err
		}
		env.Turtle().Speed(n)
		return NoneOutcome(), nil
	})
}
