package component

type TrackedTag struct{}

var TrackedTagComponent = NewComponent[TrackedTag]()

// ThreeDCameraTag distinguishes the scene camera from any UI camera.
type ThreeDCameraTag struct{}

var ThreeDCameraTagComponent = NewComponent[ThreeDCameraTag]()

type FollowTextTag struct{}

var FollowTextTagComponent = NewComponent[FollowTextTag]()
