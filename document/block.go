// seehuhn.de/go/dxf - a library for reading and writing DXF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"strconv"
	"strings"

	"seehuhn.de/go/dxf"
	"seehuhn.de/go/dxf/arrows"
	"seehuhn.de/go/dxf/entity"
)

// BlockAnonymous marks a block with a generated name.
const BlockAnonymous = 1

// Block is a named block definition: a group of entities which can be
// inserted into the drawing any number of times.
type Block struct {
	// Handle identifies the block within the document.
	Handle dxf.Handle

	// Name is the block name.  Generated names start with an
	// asterisk.
	Name string

	// Base is the block's base point.
	Base dxf.Vec3

	// Flags holds the block-type flags.
	Flags int

	// Entities holds the block's entities in drawing order.
	Entities []entity.Entity

	doc *Document
}

// NewBlock creates a new, empty block definition.
func (d *Document) NewBlock(name string) (*Block, error) {
	if name == "" {
		return nil, dxf.Error("empty block name")
	}
	key := strings.ToUpper(name)
	if _, exists := d.blocks[key]; exists {
		return nil, dxf.Error("block " + strconv.Quote(name) + " already exists")
	}
	b := &Block{Name: name, doc: d}
	b.Handle = d.register(b)
	d.blocks[key] = b
	return b, nil
}

// NewAnonymousBlock creates a block with a generated name of the form
// "*D1", "*D2", ....  Dimension renderers store the geometry of each
// dimension in such a block.
func (d *Document) NewAnonymousBlock() *Block {
	for {
		d.numAnon++
		name := "*D" + strconv.Itoa(d.numAnon)
		if _, exists := d.blocks[name]; !exists {
			b, _ := d.NewBlock(name)
			b.Flags |= BlockAnonymous
			return b
		}
	}
}

// Block looks up a block definition by name.  Block names are
// case-insensitive.
func (d *Document) Block(name string) (*Block, bool) {
	b, ok := d.blocks[strings.ToUpper(name)]
	return b, ok
}

// add assigns a handle to e and appends it to the block.
func (b *Block) add(e entity.Entity) {
	c := e.GetCommon()
	c.Handle = b.doc.register(e)
	c.Owner = b.Handle
	b.Entities = append(b.Entities, e)
}

// AddLine adds a line from start to end.
func (b *Block) AddLine(start, end dxf.Vec3) *entity.Line {
	l := &entity.Line{Start: start, End: end}
	b.add(l)
	return l
}

// AddPoint adds a point entity at p.
func (b *Block) AddPoint(p dxf.Vec3) *entity.Point {
	pt := &entity.Point{Location: p}
	b.add(pt)
	return pt
}

// AddText adds a single line of text.  The caller places the text
// using [entity.Text.SetPos] and sets height, style and rotation via
// the entity's fields.
func (b *Block) AddText(value string) *entity.Text {
	t := &entity.Text{Value: value}
	b.add(t)
	return t
}

// AddSolid adds a filled quadrilateral.  The corners are given in the
// DXF triangle-strip order.
func (b *Block) AddSolid(corners [4]dxf.Vec3) *entity.Solid {
	s := &entity.Solid{Corners: corners}
	b.add(s)
	return s
}

// AddCircle adds a circle.
func (b *Block) AddCircle(center dxf.Vec3, radius float64) *entity.Circle {
	c := &entity.Circle{Center: center, Radius: radius}
	b.add(c)
	return c
}

// AddArc adds a circular arc running counter-clockwise from
// startAngle to endAngle, in degrees.
func (b *Block) AddArc(center dxf.Vec3, radius, startAngle, endAngle float64) *entity.Arc {
	a := &entity.Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
	b.add(a)
	return a
}

// AddBlockref adds a reference to the named block.
func (b *Block) AddBlockref(name string, insert dxf.Vec3) *entity.Insert {
	ref := &entity.Insert{Block: name, Insert: insert}
	b.add(ref)
	return ref
}

// AddArrowBlockref adds a reference to an arrowhead block.  Built-in
// arrowhead blocks are created on demand; any other name must name an
// existing block definition.  The size is the length of the arrowhead
// in drawing units, rotation the pointing direction in degrees, with
// the tip of the arrowhead at insert.
//
// The returned point is where the dimension line attaches to the
// arrowhead.
func (b *Block) AddArrowBlockref(name string, insert dxf.Vec3, size, rotation float64) (*entity.Insert, dxf.Vec3, error) {
	blockName := name
	if arrows.IsBuiltin(name) {
		var err error
		blockName, err = arrows.CreateBlock(blockTable{b.doc}, name)
		if err != nil {
			return nil, dxf.Vec3{}, err
		}
	} else if _, ok := b.doc.Block(name); !ok {
		return nil, dxf.Vec3{}, dxf.Error("Block " + strconv.Quote(name) + " does not exist.")
	}

	ref := b.AddBlockref(blockName, insert)
	ref.XScale = size
	ref.YScale = size
	ref.ZScale = size
	ref.Rotation = rotation

	connect := insert
	if arrows.IsBuiltin(name) {
		connect = arrows.ConnectionPoint(name, insert, size, rotation)
	}
	return ref, connect, nil
}

// blockTable adapts a Document to the [arrows.Blocks] interface.
type blockTable struct {
	doc *Document
}

func (t blockTable) Has(name string) bool {
	_, ok := t.doc.Block(name)
	return ok
}

func (t blockTable) New(name string) (arrows.Layout, error) {
	b, err := t.doc.NewBlock(name)
	if err != nil {
		return nil, err
	}
	return arrowLayout{b}, nil
}

// arrowLayout adapts a Block to the [arrows.Layout] interface.
type arrowLayout struct {
	b *Block
}

func (l arrowLayout) AddLine(start, end dxf.Vec3) {
	l.b.AddLine(start, end)
}

func (l arrowLayout) AddSolid(corners [4]dxf.Vec3) {
	l.b.AddSolid(corners)
}

func (l arrowLayout) AddCircle(center dxf.Vec3, radius float64) {
	l.b.AddCircle(center, radius)
}

func (l arrowLayout) AddArc(center dxf.Vec3, radius, startAngle, endAngle float64) {
	l.b.AddArc(center, radius, startAngle, endAngle)
}
