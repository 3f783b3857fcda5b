package cfg

// Grid defaults. These are the values the generator uses when neither a params
// file nor a flag overrides them. Without overrides the grid is fitted to a
// Width x Length area; Columns and Rows apply once the area is cleared.
var Columns = 3
var Rows = 2

// Width and Length are the default fit area, in mm.
var Width = 70.0
var Length = 60.0

// CellSize is the outer vertex-to-vertex diameter of one hexagon, in mm.
var CellSize = 10.0

// WallThickness is measured radially: a cell's cavity has circumradius CellSize/2 - WallThickness.
var WallThickness = 1.0

// FrameThickness is the frame wall. Zero means "same as WallThickness".
var FrameThickness = 2.0

var PanelThickness = 2.5

// CoincidenceTolerance is the distance below which two points are considered the same, in mm.
var CoincidenceTolerance = 1e-6

// WeldPrecision is the number of decimal places mesh vertices are rounded to before welding.
var WeldPrecision = 6

// SDFMeshCells is the octree resolution used by the SDF kernel along the longest axis.
var SDFMeshCells = 200

// PreviewPixelsPerMM scales the PNG preview.
var PreviewPixelsPerMM = 8.0

// CNC defaults for the gcode cut job. Rates are mm/min.
var TravelFeedRate = 3000.0
var CutFeedRate = 600.0
var PlungeFeedRate = 200.0
var SafeZ = 3.0
var PassDepth = 1.0

// CutOvershoot is how far below the stock the last pass goes, so parts come free.
var CutOvershoot = 0.2
