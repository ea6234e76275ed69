package render

import (
	"hash/fnv"
	"path"
	"strings"
)

// textureColors stands in for image textures on a character display
var textureColors = map[string]RGB{
	"earth":     {60, 120, 200},
	"stars":     {200, 200, 230},
	"deathstar": {170, 170, 180},
	"moon":      {190, 185, 175},
	"reticle":   {255, 60, 60},
	"shot":      {255, 230, 120},
	"asteroid":  {140, 110, 80},
	"explosion": {255, 160, 40},
	"shield":    {90, 200, 255},
}

var fallbackColors = [...]RGB{
	{200, 90, 90}, {90, 200, 90}, {90, 90, 200}, {200, 200, 90},
	{200, 90, 200}, {90, 200, 200}, {220, 150, 90}, {160, 160, 160},
}

// TextureColor returns the representative color of a texture file
// An empty name samples as white so lighting shows through unchanged
func TextureColor(texture string) RGB {
	if texture == "" {
		return RGBWhite
	}
	base := strings.TrimSuffix(path.Base(texture), path.Ext(texture))
	if c, ok := textureColors[strings.ToLower(base)]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(base))
	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}

// spriteColor fades a sprite sheet color toward black as frames advance
func spriteColor(c RGB, frame, frames int) RGB {
	if frames <= 0 {
		return c
	}
	return Lerp(c, Scale(c, 0.2), float64(frame)/float64(frames))
}
