package mech2d

// Factory helpers that create joints, register them with a world, and
// immediately re-align the second body so the constraint holds exactly
// at creation time.

// AddSingleJoint creates one connector between attachment points on
// two bodies, registers it, and snaps body2 into alignment. Returns
// the created joint.
func AddSingleJoint(w *World, body1 *Body, attach1 Vector, body2 *Body, attach2 Vector, normalCoords CoordType, normal Vector) *Joint {
	j := NewJoint(body1, attach1, body2, attach2, normalCoords, normal)
	w.AddJoint(j)
	j.Align()
	w.SyncFromBodies()
	return j
}

// AttachRigidBody creates two joints with mutually perpendicular world
// normals, equivalent to a pin with no translational freedom.
func AttachRigidBody(w *World, body1 *Body, attach1 Vector, body2 *Body, attach2 Vector) (*Joint, *Joint) {
	j1 := AddSingleJoint(w, body1, attach1, body2, attach2, WorldCoords, Vector{0, 1})
	j2 := AddSingleJoint(w, body1, attach1, body2, attach2, WorldCoords, Vector{1, 0})
	return j1, j2
}

// AddSingleFixedJoint pins a body-local point to the scrim at the
// point's current world position, so the body does not move.
func AddSingleFixedJoint(w *World, body *Body, attach Vector, normalCoords CoordType, normal Vector) *Joint {
	return AddSingleJoint(w, w.Scrim(), body.LocalToWorld(attach), body, attach, normalCoords, normal)
}

// AttachFixedPoint pins a body-local point to the scrim with two
// perpendicular world normals.
func AttachFixedPoint(w *World, body *Body, attach Vector) (*Joint, *Joint) {
	j1 := AddSingleFixedJoint(w, body, attach, WorldCoords, Vector{0, 1})
	j2 := AddSingleFixedJoint(w, body, attach, WorldCoords, Vector{1, 0})
	return j1, j2
}
