// Package serialize converts setups, robots and virtual objects to and from
// their portable document forms so scenes can be saved, restored and printed.
package serialize

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/kinesra/simscene/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PoseDoc is the wire form of a position.
type PoseDoc struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// ObjectDoc is the wire form of a virtual object snapshot.
type ObjectDoc struct {
	Name       string    `json:"name"`
	Descriptor string    `json:"descriptor"`
	Color      [3]int    `json:"color"`
	Size       []float64 `json:"size"`
	Position   PoseDoc   `json:"position"`
}

// SetupDoc is the wire form of a setup.
type SetupDoc struct {
	ID              string             `json:"id,omitempty"`
	Name            string             `json:"name"`
	Objects         []ObjectDoc        `json:"objects"`
	RobotState      schemas.RobotState `json:"robot_state,omitempty"`
	RobotDescriptor string             `json:"robot_descriptor,omitempty"`
}

// RobotDoc is the wire form of a robot description.
type RobotDoc struct {
	Name       string   `json:"name"`
	Parts      []string `json:"parts"`
	Descriptor string   `json:"descriptor"`
}

// ObjectToDoc converts a snapshot to its document form.
func ObjectToDoc(obj schemas.VirtualObject) ObjectDoc {
	p := obj.Position()
	return ObjectDoc{
		Name:       obj.Name(),
		Descriptor: obj.Descriptor(),
		Color:      [3]int{obj.Color().Red(), obj.Color().Green(), obj.Color().Blue()},
		Size:       obj.Size(),
		Position:   PoseDoc{X: p.X(), Y: p.Y(), Z: p.Z(), Roll: p.Roll(), Pitch: p.Pitch(), Yaw: p.Yaw()},
	}
}

// ObjectFromDoc rebuilds a snapshot from its document form, re-validating the
// color on the way in.
func ObjectFromDoc(doc ObjectDoc) (schemas.VirtualObject, error) {
	color, err := schemas.NewColor(doc.Color[0], doc.Color[1], doc.Color[2])
	if err != nil {
		return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", doc.Name, err)
	}
	pos := schemas.NewPosition(doc.Position.X, doc.Position.Y, doc.Position.Z,
		doc.Position.Roll, doc.Position.Pitch, doc.Position.Yaw)
	return schemas.NewVirtualObject(doc.Name, pos, doc.Descriptor, color, schemas.Size(doc.Size)), nil
}

// SetupToDoc converts a setup to its document form.
func SetupToDoc(setup schemas.Setup) SetupDoc {
	objects := setup.Objects()
	docs := make([]ObjectDoc, 0, len(objects))
	for _, obj := range objects {
		docs = append(docs, ObjectToDoc(obj))
	}
	return SetupDoc{
		ID:              setup.ID(),
		Name:            setup.Name(),
		Objects:         docs,
		RobotState:      setup.RobotState(),
		RobotDescriptor: setup.RobotDescriptor(),
	}
}

// SetupFromDoc rebuilds a setup from its document form.
func SetupFromDoc(doc SetupDoc) (schemas.Setup, error) {
	objects := make([]schemas.VirtualObject, 0, len(doc.Objects))
	for _, od := range doc.Objects {
		obj, err := ObjectFromDoc(od)
		if err != nil {
			return schemas.Setup{}, fmt.Errorf("setup %q: %w", doc.Name, err)
		}
		objects = append(objects, obj)
	}
	id := doc.ID
	if id == "" {
		id = doc.Name
	}
	return schemas.NewSetup(id, doc.Name, objects, doc.RobotState, doc.RobotDescriptor), nil
}

// RobotToDoc converts a robot description to its document form.
func RobotToDoc(robot schemas.Robot) RobotDoc {
	parts := robot.Parts()
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.Name())
	}
	return RobotDoc{Name: robot.Name(), Parts: names, Descriptor: robot.Descriptor()}
}

// RobotFromDoc rebuilds a robot description from its document form.
func RobotFromDoc(doc RobotDoc) schemas.Robot {
	parts := make([]schemas.RobotPart, 0, len(doc.Parts))
	for _, name := range doc.Parts {
		parts = append(parts, schemas.NewRobotPart(name))
	}
	return schemas.NewRobot(doc.Name, parts, doc.Descriptor)
}

// EncodeSetup renders a setup as indented JSON.
func EncodeSetup(setup schemas.Setup) ([]byte, error) {
	return json.MarshalIndent(SetupToDoc(setup), "", "  ")
}

// DecodeSetup parses a setup document.
func DecodeSetup(data []byte) (schemas.Setup, error) {
	var doc SetupDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return schemas.Setup{}, fmt.Errorf("decode setup: %w", err)
	}
	return SetupFromDoc(doc)
}

// EncodeObjects renders a list of snapshots as indented JSON.
func EncodeObjects(objects []schemas.VirtualObject) ([]byte, error) {
	docs := make([]ObjectDoc, 0, len(objects))
	for _, obj := range objects {
		docs = append(docs, ObjectToDoc(obj))
	}
	return json.MarshalIndent(docs, "", "  ")
}

// EncodeRobot renders a robot description as indented JSON.
func EncodeRobot(robot schemas.Robot) ([]byte, error) {
	return json.MarshalIndent(RobotToDoc(robot), "", "  ")
}

// DecodeRobot parses a robot document.
func DecodeRobot(data []byte) (schemas.Robot, error) {
	var doc RobotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return schemas.Robot{}, fmt.Errorf("decode robot: %w", err)
	}
	return RobotFromDoc(doc), nil
}
