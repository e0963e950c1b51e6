package lifeforms

import "image/color"

type point struct {
	X, Y float64
}

type edge struct {
	A, B int
}

// template is an immutable constellation shape: vertex positions in local
// coordinates around the origin, the edges joining them, and its palette.
type template struct {
	name      string
	vertices  []point
	edges     []edge
	lineColor color.RGBA
	starColor color.RGBA

	// thick widens the edge lines; used by the dense DNA shapes.
	thick bool
}

var bearVertices = []point{
	{0, 0}, {-30, -40}, {30, -40}, {-60, 20}, {60, 20},
	{-80, 60}, {80, 60}, {-70, 120}, {70, 120}, {-40, 80}, {40, 80},
}

var bearEdges = []edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{0, 5}, {0, 6}, {0, 7}, {0, 8},
	{5, 9}, {6, 10}, {7, 9}, {8, 10},
	{3, 5}, {4, 6},
}

var fishVertices = []point{
	{0, 0}, {40, -30}, {40, 30}, {80, 0}, {120, -20},
	{120, 20}, {50, -10}, {50, 10}, {-20, -15},
}

var fishEdges = []edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 6}, {0, 7},
	{3, 4}, {3, 5}, {1, 6}, {2, 7},
	{0, 8},
}

var birdVertices = []point{
	{0, 0}, {20, -20}, {-30, -40}, {-10, 10}, {30, -40},
	{10, 10}, {-20, 20}, {20, 20}, {0, 30},
}

var birdEdges = []edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{0, 6}, {0, 7}, {0, 8},
	{2, 3}, {4, 5}, {6, 7}, {6, 8}, {7, 8},
}

var humanVertices = []point{
	{0, -60}, {0, 0}, {30, -30}, {-30, -30}, {20, 60}, {-20, 60},
}

var humanEdges = []edge{
	{0, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
}

var dnaVertices = []point{
	{-40, -60}, {-35, -40}, {-30, -20}, {-25, 0}, {-20, 20}, {-15, 40}, {-10, 60}, {-5, 80},
	{40, -60}, {35, -40}, {30, -20}, {25, 0}, {20, 20}, {15, 40}, {10, 60}, {5, 80},
	{-20, -45}, {20, -45},
	{-15, -25}, {15, -25},
	{-10, -5}, {10, -5},
	{-5, 15}, {5, 15},
	{0, 35}, {0, 55},
}

var dnaEdges = []edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7},
	{8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15},
	{7, 12}, {6, 11}, {5, 10}, {4, 9}, {3, 8},
	{16, 17}, {18, 19}, {20, 21}, {22, 23},
	{24, 25},
}

var dragonVertices = []point{
	{0, -40}, {20, -50}, {40, -20}, {60, 0}, {80, -10}, {100, -20},
	{20, 20}, {40, 40}, {-20, 20}, {-40, 40}, {30, -70},
}

var dragonEdges = []edge{
	{0, 1}, {0, 2}, {2, 3}, {3, 4}, {4, 5},
	{0, 6}, {6, 7}, {0, 8}, {8, 9},
	{0, 10},
}

var flowerVertices = []point{
	{0, 0}, {0, -30}, {30, 0}, {0, 30}, {-30, 0},
	{20, -20}, {-20, -20}, {-20, 20}, {20, 20},
}

var flowerEdges = []edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 5}, {5, 2}, {2, 8}, {8, 3}, {3, 7}, {7, 4}, {4, 6}, {6, 1},
}

var starVertices = []point{
	{0, -50}, {20, -15}, {50, -15}, {30, 15}, {35, 50},
	{0, 30}, {-35, 50}, {-30, 15}, {-50, -15}, {-20, -15},
}

var starEdges = []edge{
	{0, 2}, {2, 4}, {4, 6}, {6, 8}, {8, 0},
	{0, 5}, {2, 7}, {4, 9}, {6, 1}, {8, 3},
}

var heartVertices = []point{
	{0, -30}, {20, -20}, {30, 0}, {20, 30}, {0, 40},
	{-20, 30}, {-30, 0}, {-20, -20},
}

var heartEdges = []edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 0},
	{1, 4}, {2, 5}, {3, 6},
}

var octopusVertices = []point{
	{0, 0}, {-20, -30}, {20, -30}, {-30, 10}, {30, 10},
	{-10, -50}, {10, -50}, {0, -20},
}

var octopusEdges = []edge{
	{0, 1}, {1, 5}, {0, 2}, {2, 6},
	{0, 3}, {0, 4},
	{0, 7},
}

var treeVertices = []point{
	{0, 50}, {0, 0}, {-20, -20}, {20, -20}, {-30, -40}, {30, -40}, {0, -60},
}

var treeEdges = []edge{
	{0, 1},
	{1, 2}, {1, 3},
	{2, 4}, {3, 5}, {1, 6},
}

var butterflyVertices = []point{
	{0, 0}, {10, -20}, {30, -10}, {-10, -20}, {-30, -10},
	{20, 20}, {40, 30}, {-20, 20}, {-40, 30},
}

var butterflyEdges = []edge{
	{0, 1}, {1, 2}, {0, 3}, {3, 4},
	{0, 5}, {5, 6}, {0, 7}, {7, 8},
}

var spaceshipVertices = []point{
	{0, -20}, {20, 0}, {-20, 0}, {0, 20}, {10, 5}, {-10, 5}, {30, -10}, {-30, -10},
}

var spaceshipEdges = []edge{
	{0, 1}, {0, 2}, {0, 3},
	{3, 4}, {3, 5},
	{1, 6}, {2, 7},
}

var alienVertices = []point{
	{0, -30}, {20, -10}, {-20, -10}, {15, 10}, {-15, 10}, {0, 30}, {10, 20}, {-10, 20},
}

var alienEdges = []edge{
	{0, 1}, {0, 2},
	{1, 3}, {2, 4}, {3, 5}, {4, 5},
	{0, 6}, {0, 7},
}

var crystalVertices = []point{
	{0, -40}, {15, -10}, {-15, -10}, {20, 10}, {-20, 10}, {0, 40},
}

var crystalEdges = []edge{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
	{1, 3}, {2, 4}, {3, 5}, {4, 5},
}

// templates is the full rotation of constellation shapes; several shapes
// recur under different palettes.
var templates = []template{
	{"golden bear", bearVertices, bearEdges, color.RGBA{255, 128, 0, 255}, color.RGBA{255, 255, 0, 255}, false},
	{"cyan fish", fishVertices, fishEdges, color.RGBA{0, 255, 255, 255}, color.RGBA{255, 0, 255, 255}, false},
	{"magenta bird", birdVertices, birdEdges, color.RGBA{255, 0, 255, 255}, color.RGBA{0, 255, 0, 255}, false},
	{"pink human", humanVertices, humanEdges, color.RGBA{255, 0, 128, 255}, color.RGBA{128, 255, 255, 255}, false},
	{"purple dna", dnaVertices, dnaEdges, color.RGBA{128, 0, 255, 255}, color.RGBA{255, 128, 0, 255}, true},
	{"fire dragon", dragonVertices, dragonEdges, color.RGBA{200, 100, 0, 255}, color.RGBA{255, 200, 0, 255}, false},
	{"pink flower", flowerVertices, flowerEdges, color.RGBA{255, 192, 203, 255}, color.RGBA{255, 0, 128, 255}, false},
	{"gold star", starVertices, starEdges, color.RGBA{255, 215, 0, 255}, color.RGBA{255, 255, 255, 255}, false},
	{"hot pink heart", heartVertices, heartEdges, color.RGBA{255, 105, 180, 255}, color.RGBA{255, 20, 147, 255}, false},
	{"purple octopus", octopusVertices, octopusEdges, color.RGBA{147, 112, 219, 255}, color.RGBA{138, 43, 226, 255}, false},
	{"forest tree", treeVertices, treeEdges, color.RGBA{34, 139, 34, 255}, color.RGBA{50, 205, 50, 255}, false},
	{"magenta butterfly", butterflyVertices, butterflyEdges, color.RGBA{255, 0, 255, 255}, color.RGBA{255, 20, 147, 255}, false},
	{"sky spaceship", spaceshipVertices, spaceshipEdges, color.RGBA{0, 191, 255, 255}, color.RGBA{135, 206, 250, 255}, false},
	{"sea green alien", alienVertices, alienEdges, color.RGBA{60, 179, 113, 255}, color.RGBA{152, 251, 152, 255}, false},
	{"steel crystal", crystalVertices, crystalEdges, color.RGBA{176, 196, 222, 255}, color.RGBA{255, 250, 250, 255}, false},
	{"pink dragon", dragonVertices, dragonEdges, color.RGBA{255, 20, 147, 255}, color.RGBA{255, 215, 0, 255}, false},
	{"spring flower", flowerVertices, flowerEdges, color.RGBA{0, 255, 127, 255}, color.RGBA{255, 165, 0, 255}, false},
	{"violet star", starVertices, starEdges, color.RGBA{138, 43, 226, 255}, color.RGBA{255, 255, 255, 255}, false},
	{"yellow heart", heartVertices, heartEdges, color.RGBA{255, 255, 0, 255}, color.RGBA{255, 140, 0, 255}, false},
	{"lime octopus", octopusVertices, octopusEdges, color.RGBA{0, 255, 0, 255}, color.RGBA{255, 0, 0, 255}, false},
	{"pink tree", treeVertices, treeEdges, color.RGBA{255, 192, 203, 255}, color.RGBA{255, 105, 180, 255}, false},
	{"white butterfly", butterflyVertices, butterflyEdges, color.RGBA{255, 255, 255, 255}, color.RGBA{255, 0, 255, 255}, false},
	{"red spaceship", spaceshipVertices, spaceshipEdges, color.RGBA{255, 0, 0, 255}, color.RGBA{255, 255, 0, 255}, false},
	{"cyan alien", alienVertices, alienEdges, color.RGBA{0, 255, 255, 255}, color.RGBA{0, 0, 255, 255}, false},
	{"purple flower", flowerVertices, flowerEdges, color.RGBA{255, 0, 255, 255}, color.RGBA{128, 0, 128, 255}, false},
	{"ember star", starVertices, starEdges, color.RGBA{255, 69, 0, 255}, color.RGBA{255, 215, 0, 255}, false},
	{"turquoise heart", heartVertices, heartEdges, color.RGBA{0, 206, 209, 255}, color.RGBA{255, 20, 147, 255}, false},
	{"magenta crystal", crystalVertices, crystalEdges, color.RGBA{255, 0, 255, 255}, color.RGBA{0, 255, 255, 255}, false},
	{"pink dna", dnaVertices, dnaEdges, color.RGBA{255, 20, 147, 255}, color.RGBA{255, 255, 0, 255}, true},
}
