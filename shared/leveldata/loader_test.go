package leveldata_test

import (
	"math"
	"os"
	"testing"

	"github.com/tidegap/floatplane/assets"
	"github.com/tidegap/floatplane/shared/leveldata"
)

func TestLoadLevel_Archipelago(t *testing.T) {
	lvl := assets.MustLoadWorld(assets.WorldMap)

	if lvl.Name != "archipelago" {
		t.Errorf("Expected name archipelago, got %s", lvl.Name)
	}
	if lvl.WorldSize != 1500 {
		t.Errorf("Expected world size 1500, got %f", lvl.WorldSize)
	}
	if len(lvl.Islands) != 18 {
		t.Fatalf("Expected 18 islands, got %d", len(lvl.Islands))
	}

	for i := 1; i < len(lvl.Islands); i++ {
		if lvl.Islands[i-1].Name >= lvl.Islands[i].Name {
			t.Errorf("Expected islands sorted by name, got %s before %s",
				lvl.Islands[i-1].Name, lvl.Islands[i].Name)
		}
	}

	half := lvl.WorldSize / 2
	for _, isl := range lvl.Islands {
		if isl.Radius <= 0 || isl.Height <= 0 {
			t.Errorf("Expected island %s to have size and height, got r=%f h=%f",
				isl.Name, isl.Radius, isl.Height)
		}
		if math.Abs(isl.X)+isl.Radius > half || math.Abs(isl.Z)+isl.Radius > half {
			t.Errorf("Expected island %s inside the water sheet, got (%f, %f) r=%f",
				isl.Name, isl.X, isl.Z, isl.Radius)
		}
	}

	first := lvl.Islands[0]
	if first.Name != "aniva" {
		t.Errorf("Expected first island aniva, got %s", first.Name)
	}
	if first.X != -520 || first.Z != -430 || first.Radius != 28 || first.Height != 26 {
		t.Errorf("Expected aniva at (-520, -430) r=28 h=26, got %+v", first)
	}

	sp := lvl.Spawn
	if sp.X != 0 || sp.Z != 0 {
		t.Errorf("Expected spawn at the origin, got (%f, %f)", sp.X, sp.Z)
	}
	if sp.Altitude != 20 || sp.Heading != 0 || sp.Speed != 25 {
		t.Errorf("Expected spawn altitude 20 heading 0 speed 25, got %+v", sp)
	}
}

func TestLoadLevel_PropertyDefaults(t *testing.T) {
	lvl, err := leveldata.LoadLevel(os.DirFS("testdata"), "defaults.tmx")
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}

	if lvl.WorldSize != 100 {
		t.Errorf("Expected world size 100, got %f", lvl.WorldSize)
	}
	if len(lvl.Islands) != 1 {
		t.Fatalf("Expected 1 island, got %d", len(lvl.Islands))
	}

	isl := lvl.Islands[0]
	if isl.X != -25 || isl.Z != -15 || isl.Radius != 5 {
		t.Errorf("Expected island at (-25, -15) r=5, got %+v", isl)
	}
	if isl.Height != 0 {
		t.Errorf("Expected missing height to default to 0, got %f", isl.Height)
	}

	sp := lvl.Spawn
	if sp.X != 0 || sp.Z != 0 || sp.Heading != 0 {
		t.Errorf("Expected spawn at the origin, got %+v", sp)
	}
	if sp.Altitude != leveldata.DefaultSpawnAltitude {
		t.Errorf("Expected default altitude %f, got %f", leveldata.DefaultSpawnAltitude, sp.Altitude)
	}
	if sp.Speed != leveldata.DefaultSpawnSpeed {
		t.Errorf("Expected default speed %f, got %f", leveldata.DefaultSpawnSpeed, sp.Speed)
	}
}

func TestLoadLevel_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "Missing spawn group", path: "nospawn.tmx"},
		{name: "Rectangular map", path: "rect.tmx"},
		{name: "Island without size", path: "zeroisland.tmx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := leveldata.LoadLevel(os.DirFS("testdata"), tt.path); err == nil {
				t.Errorf("Expected %s to fail to parse", tt.path)
			}
		})
	}
}
