// Package town procedurally generates the static environment the weather
// falls on: a street grid, buildings, street lamps and trees. Generation is
// deterministic for a given seed; nothing here changes after startup.
package town

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/downpour/config"
)

// Building is one axis-aligned box footprint with a flat roof.
type Building struct {
	X, Z float32 // footprint center
	W, D float32 // footprint extent
	H    float32 // roof height
	Tone uint8   // facade palette index
}

// Lamp is a street lamp at a road intersection.
type Lamp struct {
	X, Z float32
}

// Tree is a simple cone-on-trunk prop.
type Tree struct {
	X, Z float32
	H    float32
}

// Waypoint is a 2D route node on the road network (y is ground level).
type Waypoint struct {
	X, Z float32
}

// Town is the generated static scene.
type Town struct {
	Width, Depth float32
	Buildings    []Building
	Lamps        []Lamp
	Trees        []Tree

	blocksX, blocksZ int
	cell             float32 // block size + road width
	originX, originZ float32 // min corner of the grid
	roadWidth        float32
}

// Generate builds a town from the config section. The same seed always
// produces the same town.
func Generate(cfg config.TownConfig, seed int64) *Town {
	noise := opensimplex.New(seed)
	rng := rand.New(rand.NewSource(seed))

	cell := float32(cfg.BlockSize + cfg.RoadWidth)
	width := float32(cfg.BlocksX)*cell + float32(cfg.RoadWidth)
	depth := float32(cfg.BlocksZ)*cell + float32(cfg.RoadWidth)

	t := &Town{
		Width:     width,
		Depth:     depth,
		blocksX:   cfg.BlocksX,
		blocksZ:   cfg.BlocksZ,
		cell:      cell,
		originX:   -width / 2,
		originZ:   -depth / 2,
		roadWidth: float32(cfg.RoadWidth),
	}

	lotSize := float32(cfg.BlockSize) / 2
	for bx := 0; bx < cfg.BlocksX; bx++ {
		for bz := 0; bz < cfg.BlocksZ; bz++ {
			// One noise sample per block drives both density and height, so
			// tall clusters and open plazas form coherent neighborhoods.
			n := noise.Eval2(float64(bx)*cfg.NoiseScale, float64(bz)*cfg.NoiseScale)

			blockMinX := t.originX + float32(cfg.RoadWidth) + float32(bx)*cell
			blockMinZ := t.originZ + float32(cfg.RoadWidth) + float32(bz)*cell

			if n < cfg.PlazaThreshold {
				t.plantPlaza(rng, blockMinX, blockMinZ, lotSize)
				continue
			}

			// 2x2 lots per block.
			for lx := 0; lx < 2; lx++ {
				for lz := 0; lz < 2; lz++ {
					if rng.Float64() < cfg.TreeChance {
						t.Trees = append(t.Trees, Tree{
							X: blockMinX + (float32(lx)+0.5)*lotSize,
							Z: blockMinZ + (float32(lz)+0.5)*lotSize,
							H: 2 + rng.Float32()*2,
						})
						continue
					}

					hSpan := cfg.BuildingMaxH - cfg.BuildingMinH
					h := cfg.BuildingMinH + hSpan*(n+1)/2*(0.6+0.4*rng.Float64())
					margin := 0.5 + rng.Float32()*0.8
					t.Buildings = append(t.Buildings, Building{
						X:    blockMinX + (float32(lx)+0.5)*lotSize,
						Z:    blockMinZ + (float32(lz)+0.5)*lotSize,
						W:    lotSize - 2*margin,
						D:    lotSize - 2*margin,
						H:    float32(h),
						Tone: uint8(rng.Intn(paletteSize)),
					})
				}
			}
		}
	}

	t.placeLamps(cfg)
	return t
}

// paletteSize is the number of facade tones the renderer provides.
const paletteSize = 6

// plantPlaza fills an open block with a loose cluster of trees.
func (t *Town) plantPlaza(rng *rand.Rand, minX, minZ, lotSize float32) {
	count := 3 + rng.Intn(4)
	for i := 0; i < count; i++ {
		t.Trees = append(t.Trees, Tree{
			X: minX + rng.Float32()*lotSize*2,
			Z: minZ + rng.Float32()*lotSize*2,
			H: 2.5 + rng.Float32()*2.5,
		})
	}
}

// placeLamps puts street lamps on a subset of road intersections.
func (t *Town) placeLamps(cfg config.TownConfig) {
	spacing := cfg.LampSpacing
	if spacing < 1 {
		spacing = 1
	}
	for i := 0; i <= t.blocksX; i += spacing {
		for j := 0; j <= t.blocksZ; j += spacing {
			wp := t.Intersection(i, j)
			t.Lamps = append(t.Lamps, Lamp{X: wp.X, Z: wp.Z})
		}
	}
}

// Intersection returns the center of road intersection (i, j).
// Valid indices run 0..BlocksX and 0..BlocksZ inclusive.
func (t *Town) Intersection(i, j int) Waypoint {
	return Waypoint{
		X: t.originX + float32(i)*t.cell + t.roadWidth/2,
		Z: t.originZ + float32(j)*t.cell + t.roadWidth/2,
	}
}

// RouteLoop returns a closed rectangular route along the road grid, for
// vehicles. The loop circles a random rectangle of blocks.
func (t *Town) RouteLoop(rng *rand.Rand) []Waypoint {
	i0 := rng.Intn(t.blocksX)
	i1 := i0 + 1 + rng.Intn(t.blocksX-i0)
	j0 := rng.Intn(t.blocksZ)
	j1 := j0 + 1 + rng.Intn(t.blocksZ-j0)

	return []Waypoint{
		t.Intersection(i0, j0),
		t.Intersection(i1, j0),
		t.Intersection(i1, j1),
		t.Intersection(i0, j1),
	}
}

// SidewalkLoop returns a route like RouteLoop but inset toward the blocks,
// so pedestrians don't share lanes with vehicles.
func (t *Town) SidewalkLoop(rng *rand.Rand) []Waypoint {
	loop := t.RouteLoop(rng)
	inset := t.roadWidth * 0.35
	// Shrink the rectangle toward its center.
	cx := (loop[0].X + loop[2].X) / 2
	cz := (loop[0].Z + loop[2].Z) / 2
	for i := range loop {
		if loop[i].X < cx {
			loop[i].X += inset
		} else {
			loop[i].X -= inset
		}
		if loop[i].Z < cz {
			loop[i].Z += inset
		} else {
			loop[i].Z -= inset
		}
	}
	return loop
}
