package cookie

// Lookup exposes the classified failure behind Get.
var Lookup = (*Codec).lookup
