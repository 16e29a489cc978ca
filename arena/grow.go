package arena

import "math/bits"

func isPow2(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// alignUp rounds length up to the next multiple of align.
func alignUp(length, align int) int {
	if align <= 0 {
		return 0
	}
	if isPow2(align) {
		mask := align - 1
		if length&mask == 0 {
			return length
		}
		return (length &^ mask) + align
	}
	if rem := length % align; rem != 0 {
		return length + align - rem
	}
	return length
}

// growthChunk returns the number of bytes an arena of itemSize-byte items
// grows by when it runs out of room.
func growthChunk(itemSize int, c config) int {
	watermark := c.blockSize >> c.growthFactor
	if itemSize > watermark {
		return alignUp(itemSize<<c.growthFactor, c.blockSize)
	}
	return c.blockSize
}
