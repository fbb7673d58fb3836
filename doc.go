// Package mech2d is a small 2D rigid-body mechanics engine for
// educational simulations: circular and straight edge geometry,
// collision and resting-contact detection, impulse resolution with
// restitution, joints and springs, and fixed-step ODE integration.
//
// A simulation exposes its state as a VarsList of doubles and is
// advanced by a Solver (RungeKutta, ModifiedEuler) driven through an
// AdvanceStrategy. Collisions are detected by comparing each body's
// current transform against its saved previous transform, so the
// driver must call PrepareStep before integrating.
package mech2d
