package constants

import "time"

// Friction is the exponential decay rate of kinetic velocity, per second.
const Friction = 5.0

// MinVelocity is the speed (px/s) below which kinetic scrolling stops.
const MinVelocity = 1.0

// VelocitySmoothing is the weight of the newest sample when smoothing touch velocity.
const VelocitySmoothing = 0.3

// MinTouchInterval floors the time between two touch samples.
const MinTouchInterval = time.Millisecond

// FirstTickInterval is the assumed frame time when kinetic scrolling has no previous tick.
const FirstTickInterval = 16 * time.Millisecond

// FrameInterval is how far ahead the container asks for its next redraw while animating.
const FrameInterval = 16 * time.Millisecond

// AutoScrollDeadzone is the per-axis distance (px) from the origin that does not scroll.
const AutoScrollDeadzone = 20.0

// AutoScrollExponent shapes auto-scroll speed: speed = distance^exponent px/s.
const AutoScrollExponent = 1.5

// AutoScrollIconSize is the diameter of the auto-scroll origin marker.
const AutoScrollIconSize = 40.0

// LineMultiplier converts wheel lines to pixels.
const LineMultiplier = 60.0

// CacheEpsilon is the tolerance (px) for reusing a cached visible rectangle.
const CacheEpsilon = 0.01

// HoverDuration is the length of the scrollbar hover fade.
const HoverDuration = 200 * time.Millisecond

// ScrollToDuration is the length of an animated scroll-to.
const ScrollToDuration = 400 * time.Millisecond

// TransactionIdle ends a wheel transaction once the pointer moves after this long.
const TransactionIdle = 100 * time.Millisecond

// TransactionTimeout ends a wheel transaction regardless of pointer activity.
const TransactionTimeout = 1500 * time.Millisecond

// MinScrollerLength is the smallest scrollbar handle length (px).
const MinScrollerLength = 2.0

// DefaultScrollbarWidth is the rail width (px).
const DefaultScrollbarWidth = 10.0

// DefaultScrollerWidth is the handle width (px).
const DefaultScrollerWidth = 10.0

// PageOverlap is how much of the previous page stays visible after PageUp/PageDown (px).
const PageOverlap = 40.0

// ArrowStep is the distance (px) an arrow key scrolls.
const ArrowStep = 40.0

// MinEventBusBufferSize is the minimum buffer per subscriber channel.
const MinEventBusBufferSize = 64

// EventBusPublishTimeout is the per-subscriber timeout for events that must not be dropped.
const EventBusPublishTimeout = 200 * time.Millisecond

// DefaultSeedRows is how many rows a fresh store is filled with.
const DefaultSeedRows = 100_000

// FeedInterval is how often the background feed appends a row.
const FeedInterval = 2 * time.Second

// FetchMargin is how many rows beyond the visible range a row window prefetches.
const FetchMargin = 64
