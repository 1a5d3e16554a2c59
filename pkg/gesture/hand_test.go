package gesture

import (
	"testing"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
)

// uniformHand returns 21 hand landmarks all at the frame center. Every finger
// reads as curled and the thumb and index tips coincide.
func uniformHand() []landmark.Point {
	points := make([]landmark.Point, landmark.NumHandLandmarks)
	for i := range points {
		points[i] = landmark.Point{X: 0.5, Y: 0.5}
	}
	return points
}

func at(points []landmark.Point, idx int, x, y float64) {
	points[idx] = landmark.Point{X: x, Y: y}
}

func TestIsClosed(t *testing.T) {
	tests := []struct {
		name      string
		tipY      float64
		mcpY      float64
		threshold float64
		want      bool
	}{
		{
			name:      "fingertip below MCP beyond threshold",
			tipY:      0.62,
			mcpY:      0.60,
			threshold: DefaultCloseThreshold,
			want:      true,
		},
		{
			name:      "fingertip above MCP",
			tipY:      0.40,
			mcpY:      0.60,
			threshold: DefaultCloseThreshold,
			want:      false,
		},
		{
			name:      "difference below threshold is not closed",
			tipY:      0.605,
			mcpY:      0.60,
			threshold: 0.01,
			want:      false,
		},
		{
			name:      "tighter threshold flips the result",
			tipY:      0.605,
			mcpY:      0.60,
			threshold: 0.001,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := uniformHand()
			at(points, landmark.MiddleTip, 0.5, tt.tipY)
			at(points, landmark.MiddleMCP, 0.5, tt.mcpY)

			if got := IsClosed(points, tt.threshold); got != tt.want {
				t.Errorf("IsClosed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsClosed_ShortSlice(t *testing.T) {
	if IsClosed([]landmark.Point{{X: 0.5, Y: 0.5}}, DefaultCloseThreshold) {
		t.Error("IsClosed() on a short slice should be false")
	}
}

func TestIsPinch(t *testing.T) {
	t.Run("coincident tips pinch under the default threshold", func(t *testing.T) {
		points := uniformHand()
		if !IsPinch(points, DefaultPinchThreshold) {
			t.Error("IsPinch() = false, want true for coincident thumb and index tips")
		}
	})

	t.Run("coincident tips pinch under any positive threshold", func(t *testing.T) {
		points := uniformHand()
		if !IsPinch(points, 1e-9) {
			t.Error("IsPinch() = false, want true for zero distance")
		}
	})

	t.Run("distant tips do not pinch", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.2, 0.5)
		at(points, landmark.IndexTip, 0.8, 0.5)
		if IsPinch(points, DefaultPinchThreshold) {
			t.Error("IsPinch() = true, want false for tips 0.6 apart")
		}
	})

	t.Run("distance exactly at threshold is not a pinch", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.50, 0.5)
		at(points, landmark.IndexTip, 0.55, 0.5)
		if IsPinch(points, 0.05) {
			t.Error("IsPinch() = true, want false at the threshold boundary")
		}
	})
}

func TestIsPeace(t *testing.T) {
	peaceHand := func() []landmark.Point {
		points := uniformHand()
		// Index and middle raised into a V, ring and pinky folded down.
		at(points, landmark.IndexTip, 0.45, 0.40)
		at(points, landmark.IndexPIP, 0.45, 0.50)
		at(points, landmark.MiddleTip, 0.55, 0.40)
		at(points, landmark.MiddlePIP, 0.55, 0.50)
		at(points, landmark.RingTip, 0.55, 0.62)
		at(points, landmark.RingPIP, 0.55, 0.60)
		at(points, landmark.PinkyTip, 0.60, 0.62)
		at(points, landmark.PinkyPIP, 0.60, 0.60)
		return points
	}

	t.Run("canonical V shape", func(t *testing.T) {
		if !IsPeace(peaceHand(), DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsPeace() = false, want true")
		}
	})

	t.Run("tips too close together", func(t *testing.T) {
		points := peaceHand()
		at(points, landmark.IndexTip, 0.50, 0.40)
		at(points, landmark.MiddleTip, 0.52, 0.40)
		if IsPeace(points, DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsPeace() = true, want false when the V is collapsed")
		}
	})

	t.Run("ring finger extended breaks the sign", func(t *testing.T) {
		points := peaceHand()
		at(points, landmark.RingTip, 0.55, 0.40)
		if IsPeace(points, DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsPeace() = true, want false with three fingers raised")
		}
	})
}

func TestIsThumbsUp(t *testing.T) {
	thumbsUp := func() []landmark.Point {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.40, 0.30)
		at(points, landmark.ThumbIP, 0.42, 0.40)
		// Four fingers stay at the uniform center, which reads as curled.
		return points
	}

	t.Run("thumb raised with fingers curled", func(t *testing.T) {
		if !IsThumbsUp(thumbsUp(), DefaultCurlThreshold) {
			t.Error("IsThumbsUp() = false, want true")
		}
	})

	t.Run("index extended breaks the gesture", func(t *testing.T) {
		points := thumbsUp()
		at(points, landmark.IndexTip, 0.5, 0.30)
		at(points, landmark.IndexPIP, 0.5, 0.50)
		if IsThumbsUp(points, DefaultCurlThreshold) {
			t.Error("IsThumbsUp() = true, want false with the index raised")
		}
	})

	t.Run("thumb pointing down is not thumbs up", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.40, 0.50)
		at(points, landmark.ThumbIP, 0.42, 0.40)
		if IsThumbsUp(points, DefaultCurlThreshold) {
			t.Error("IsThumbsUp() = true, want false for a lowered thumb")
		}
	})
}

func TestIsThumbsDown(t *testing.T) {
	t.Run("thumb lowered with fingers curled", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.40, 0.50)
		at(points, landmark.ThumbIP, 0.42, 0.40)
		if !IsThumbsDown(points, DefaultCurlThreshold) {
			t.Error("IsThumbsDown() = false, want true")
		}
	})

	t.Run("raised thumb is not thumbs down", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.40, 0.30)
		at(points, landmark.ThumbIP, 0.42, 0.40)
		if IsThumbsDown(points, DefaultCurlThreshold) {
			t.Error("IsThumbsDown() = true, want false")
		}
	})
}

func TestIsRockSign(t *testing.T) {
	rockHand := func() []landmark.Point {
		points := uniformHand()
		at(points, landmark.IndexTip, 0.40, 0.40)
		at(points, landmark.IndexPIP, 0.40, 0.50)
		at(points, landmark.PinkyTip, 0.60, 0.40)
		at(points, landmark.PinkyPIP, 0.60, 0.50)
		at(points, landmark.MiddleTip, 0.50, 0.55)
		at(points, landmark.MiddlePIP, 0.50, 0.50)
		at(points, landmark.RingTip, 0.52, 0.55)
		at(points, landmark.RingPIP, 0.52, 0.50)
		return points
	}

	t.Run("horns with separated tips", func(t *testing.T) {
		if !IsRockSign(rockHand(), DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsRockSign() = false, want true")
		}
	})

	t.Run("index and pinky stacked vertically", func(t *testing.T) {
		points := rockHand()
		at(points, landmark.PinkyTip, 0.40, 0.40)
		if IsRockSign(points, DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsRockSign() = true, want false without horizontal separation")
		}
	})

	t.Run("middle finger raised breaks the sign", func(t *testing.T) {
		points := rockHand()
		at(points, landmark.MiddleTip, 0.50, 0.40)
		if IsRockSign(points, DefaultTipGapThreshold, DefaultCurlThreshold) {
			t.Error("IsRockSign() = true, want false with the middle raised")
		}
	})
}

func TestIsOpenHand(t *testing.T) {
	openHand := func() []landmark.Point {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.30, 0.30)
		at(points, landmark.ThumbIP, 0.32, 0.45)
		at(points, landmark.IndexTip, 0.40, 0.30)
		at(points, landmark.IndexPIP, 0.40, 0.45)
		at(points, landmark.MiddleTip, 0.50, 0.28)
		at(points, landmark.MiddlePIP, 0.50, 0.45)
		at(points, landmark.RingTip, 0.60, 0.30)
		at(points, landmark.RingPIP, 0.60, 0.45)
		at(points, landmark.PinkyTip, 0.70, 0.32)
		at(points, landmark.PinkyPIP, 0.70, 0.45)
		return points
	}

	t.Run("spread open hand", func(t *testing.T) {
		if !IsOpenHand(openHand(), DefaultExtensionThreshold, DefaultSpreadThreshold) {
			t.Error("IsOpenHand() = false, want true")
		}
	})

	t.Run("fingers together fail the spread check", func(t *testing.T) {
		points := openHand()
		at(points, landmark.IndexTip, 0.48, 0.30)
		at(points, landmark.IndexPIP, 0.48, 0.45)
		at(points, landmark.RingTip, 0.52, 0.30)
		at(points, landmark.RingPIP, 0.52, 0.45)
		at(points, landmark.PinkyTip, 0.54, 0.32)
		at(points, landmark.PinkyPIP, 0.54, 0.45)
		if IsOpenHand(points, DefaultExtensionThreshold, DefaultSpreadThreshold) {
			t.Error("IsOpenHand() = true, want false for a narrow hand")
		}
	})

	t.Run("one curled finger fails the extension check", func(t *testing.T) {
		points := openHand()
		at(points, landmark.RingTip, 0.60, 0.50)
		if IsOpenHand(points, DefaultExtensionThreshold, DefaultSpreadThreshold) {
			t.Error("IsOpenHand() = true, want false with the ring curled")
		}
	})
}

func TestIsPointing(t *testing.T) {
	t.Run("index raised alone", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.IndexTip, 0.5, 0.35)
		at(points, landmark.IndexPIP, 0.5, 0.50)
		if !IsPointing(points, DefaultCurlThreshold) {
			t.Error("IsPointing() = false, want true")
		}
	})

	t.Run("two raised fingers are not pointing", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.IndexTip, 0.5, 0.35)
		at(points, landmark.IndexPIP, 0.5, 0.50)
		at(points, landmark.MiddleTip, 0.55, 0.35)
		at(points, landmark.MiddlePIP, 0.55, 0.50)
		if IsPointing(points, DefaultCurlThreshold) {
			t.Error("IsPointing() = true, want false with the middle raised")
		}
	})
}

func TestIsOKSign(t *testing.T) {
	okHand := func() []landmark.Point {
		points := uniformHand()
		at(points, landmark.ThumbTip, 0.40, 0.55)
		at(points, landmark.IndexTip, 0.41, 0.55)
		at(points, landmark.MiddleTip, 0.50, 0.35)
		at(points, landmark.MiddlePIP, 0.50, 0.50)
		at(points, landmark.RingTip, 0.55, 0.35)
		at(points, landmark.RingPIP, 0.55, 0.50)
		at(points, landmark.PinkyTip, 0.60, 0.37)
		at(points, landmark.PinkyPIP, 0.60, 0.50)
		return points
	}

	t.Run("circle closed with three fingers raised", func(t *testing.T) {
		if !IsOKSign(okHand(), DefaultCurlThreshold, DefaultPinchThreshold) {
			t.Error("IsOKSign() = false, want true")
		}
	})

	t.Run("open circle is not an OK sign", func(t *testing.T) {
		points := okHand()
		at(points, landmark.ThumbTip, 0.30, 0.55)
		if IsOKSign(points, DefaultCurlThreshold, DefaultPinchThreshold) {
			t.Error("IsOKSign() = true, want false with the circle open")
		}
	})

	t.Run("curled back fingers are not an OK sign", func(t *testing.T) {
		points := okHand()
		at(points, landmark.MiddleTip, 0.50, 0.55)
		at(points, landmark.RingTip, 0.55, 0.55)
		at(points, landmark.PinkyTip, 0.60, 0.55)
		if IsOKSign(points, DefaultCurlThreshold, DefaultPinchThreshold) {
			t.Error("IsOKSign() = true, want false with back fingers curled")
		}
	})
}

func TestIsPointingSimple(t *testing.T) {
	t.Run("index tip above every other tip", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.IndexTip, 0.5, 0.30)
		at(points, landmark.ThumbTip, 0.4, 0.45)
		at(points, landmark.MiddleTip, 0.52, 0.50)
		at(points, landmark.RingTip, 0.55, 0.52)
		at(points, landmark.PinkyTip, 0.58, 0.55)
		if !IsPointingSimple(points) {
			t.Error("IsPointingSimple() = false, want true")
		}
	})

	t.Run("middle tip higher than index", func(t *testing.T) {
		points := uniformHand()
		at(points, landmark.IndexTip, 0.5, 0.40)
		at(points, landmark.MiddleTip, 0.52, 0.30)
		if IsPointingSimple(points) {
			t.Error("IsPointingSimple() = true, want false")
		}
	})

	t.Run("short slice", func(t *testing.T) {
		if IsPointingSimple(nil) {
			t.Error("IsPointingSimple(nil) = true, want false")
		}
	})
}
