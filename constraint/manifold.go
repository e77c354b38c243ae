package constraint

import (
	"math"

	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/vec2"
)

// biasRelative and biasAbsolute give the SAT reference-face selection its
// hysteresis: a new axis only displaces the incumbent when it penetrates
// measurably more, which keeps the reference face (and thus the contact
// normal) from flipping between near-equal axes frame to frame.
const (
	biasRelative = 0.95
	biasAbsolute = 0.01
)

// Manifold is the collision record for one ordered body pair (A, B): a unit
// normal pointing from A toward B, a penetration depth, and up to two world-
// space contact points.
type Manifold struct {
	BodyA, BodyB *actor.Body

	Normal        vec2.V
	Penetration   float64
	ContactCount  int
	ContactPoints [2]vec2.V
}

// NewManifold returns a fresh, contact-free manifold for the ordered pair
// (a, b).
func NewManifold(a, b *actor.Body) *Manifold {
	return &Manifold{BodyA: a, BodyB: b}
}

// Generate dispatches on the shape kinds of A and B via a 2x2 jump table and
// fills in Normal/Penetration/ContactCount/ContactPoints. It never returns an
// error: a coincident-circle or degenerate-edge case mid-solve is absorbed by
// a deterministic fallback rather than reported (§7 policy — construction
// validates, stepping does not fail).
func (m *Manifold) Generate() {
	m.ContactCount = 0
	a, b := m.BodyA, m.BodyB

	switch ashape := a.Shape.(type) {
	case *actor.Circle:
		switch bshape := b.Shape.(type) {
		case *actor.Circle:
			circleCircle(m, a, ashape, b, bshape)
		case *actor.Polygon:
			circlePolygon(m, a, ashape, b, bshape)
		}
	case *actor.Polygon:
		switch bshape := b.Shape.(type) {
		case *actor.Circle:
			polygonCircle(m, a, ashape, b, bshape)
		case *actor.Polygon:
			polygonPolygon(m, a, ashape, b, bshape)
		}
	}
}

func circleCircle(m *Manifold, a *actor.Body, ac *actor.Circle, b *actor.Body, bc *actor.Circle) {
	n := vec2.Sub(b.Transform.Pos, a.Transform.Pos)
	r := ac.Radius + bc.Radius

	if vec2.LengthSq(n) >= r*r {
		return
	}

	d := vec2.Length(n)
	m.ContactCount = 1

	if d == 0 {
		m.Normal = vec2.V{X: 1, Y: 0}
		m.Penetration = ac.Radius
		m.ContactPoints[0] = a.Transform.Pos
		return
	}

	m.Normal = vec2.Scale(n, 1/d)
	m.Penetration = r - d
	m.ContactPoints[0] = vec2.Add(a.Transform.Pos, vec2.Scale(m.Normal, ac.Radius))
}

// circlePolygon delegates to polygonCircle with the bodies swapped, then
// negates the resulting normal so it keeps pointing A -> B.
func circlePolygon(m *Manifold, a *actor.Body, ac *actor.Circle, b *actor.Body, bp *actor.Polygon) {
	polygonCircle(m, b, bp, a, ac)
	m.Normal = vec2.Neg(m.Normal)
	m.BodyA, m.BodyB = a, b
}

func polygonCircle(m *Manifold, p *actor.Body, pshape *actor.Polygon, c *actor.Body, cshape *actor.Circle) {
	m.BodyA, m.BodyB = p, c

	center := p.Transform.Rot.Transpose().MulVec(vec2.Sub(c.Transform.Pos, p.Transform.Pos))

	separation := math.Inf(-1)
	faceIdx := 0
	n := len(pshape.Vertices)
	for i := 0; i < n; i++ {
		s := vec2.Dot(pshape.FaceNormals[i], vec2.Sub(center, pshape.Vertices[i]))
		if s > cshape.Radius {
			return
		}
		if s > separation {
			separation = s
			faceIdx = i
		}
	}

	v1 := pshape.Vertices[faceIdx]
	v2 := pshape.Vertices[(faceIdx+1)%n]

	if separation < vec2.Epsilon {
		m.ContactCount = 1
		m.Penetration = cshape.Radius
		m.Normal = p.Transform.Rot.MulVec(pshape.FaceNormals[faceIdx])
		m.ContactPoints[0] = vec2.Sub(c.Transform.Pos, vec2.Scale(m.Normal, cshape.Radius))
		return
	}

	switch {
	case vec2.Dot(vec2.Sub(center, v1), vec2.Sub(v2, v1)) <= 0:
		if vec2.LengthSq(vec2.Sub(center, v1)) > cshape.Radius*cshape.Radius {
			return
		}
		m.ContactCount = 1
		m.Normal = p.Transform.Rot.MulVec(vec2.Normalize(vec2.Sub(center, v1)))
		m.ContactPoints[0] = vec2.Add(p.Transform.Rot.MulVec(v1), p.Transform.Pos)
	case vec2.Dot(vec2.Sub(center, v2), vec2.Sub(v1, v2)) <= 0:
		if vec2.LengthSq(vec2.Sub(center, v2)) > cshape.Radius*cshape.Radius {
			return
		}
		m.ContactCount = 1
		m.Normal = p.Transform.Rot.MulVec(vec2.Normalize(vec2.Sub(center, v2)))
		m.ContactPoints[0] = vec2.Add(p.Transform.Rot.MulVec(v2), p.Transform.Pos)
	default:
		if vec2.Dot(vec2.Sub(center, v1), pshape.FaceNormals[faceIdx]) > cshape.Radius {
			return
		}
		m.ContactCount = 1
		m.Normal = p.Transform.Rot.MulVec(pshape.FaceNormals[faceIdx])
		m.ContactPoints[0] = vec2.Sub(c.Transform.Pos, vec2.Scale(m.Normal, cshape.Radius))
	}

	m.Penetration = cshape.Radius - separation
}

func polygonPolygon(m *Manifold, a *actor.Body, ap *actor.Polygon, b *actor.Body, bp *actor.Polygon) {
	faceA, penA := axisOfLeastPenetration(a, ap, b, bp)
	if penA >= 0 {
		return
	}
	faceB, penB := axisOfLeastPenetration(b, bp, a, ap)
	if penB >= 0 {
		return
	}

	var refBody, incBody *actor.Body
	var refShape, incShape *actor.Polygon
	var refFace int
	flip := greater(penB, penA)
	if flip {
		refBody, refShape, refFace = b, bp, faceB
		incBody, incShape = a, ap
	} else {
		refBody, refShape, refFace = a, ap, faceA
		incBody, incShape = b, bp
	}

	incFaceV1, incFaceV2 := incidentFace(refBody, refShape, refFace, incBody, incShape)

	refV1 := refShape.Vertices[refFace]
	n := len(refShape.Vertices)
	refV2 := refShape.Vertices[(refFace+1)%n]
	refV1 = vec2.Add(refBody.Transform.Pos, refBody.Transform.Rot.MulVec(refV1))
	refV2 = vec2.Add(refBody.Transform.Pos, refBody.Transform.Rot.MulVec(refV2))

	tangent := vec2.Normalize(vec2.Sub(refV2, refV1))
	refNormal := vec2.V{X: tangent.Y, Y: -tangent.X}

	negSide := -vec2.Dot(tangent, refV1)
	posSide := vec2.Dot(tangent, refV2)

	clipped, count := clip(vec2.Neg(tangent), negSide, incFaceV1, incFaceV2)
	if count < 2 {
		return
	}
	clipped2, count2 := clip(tangent, posSide, clipped[0], clipped[1])
	if count2 < 2 {
		return
	}

	refFaceDot := vec2.Dot(refNormal, refV1)

	contactCount := 0
	var totalPenetration float64
	for _, p := range clipped2 {
		sep := vec2.Dot(refNormal, p) - refFaceDot
		if sep <= 0 {
			m.ContactPoints[contactCount] = p
			totalPenetration += -sep
			contactCount++
		}
	}
	if contactCount == 0 {
		return
	}

	m.ContactCount = contactCount
	m.Penetration = totalPenetration / float64(contactCount)
	if flip {
		m.Normal = vec2.Neg(refNormal)
	} else {
		m.Normal = refNormal
	}
}

// greater reports whether a (the candidate penetration) is at least as deep
// as b biased by biasRelative/biasAbsolute, so a new reference axis only
// displaces the incumbent when it clearly penetrates more (§4.3 step 3) —
// this hysteresis is what keeps the reference face stable across steps.
func greater(a, b float64) bool {
	return a >= b*biasRelative+a*biasAbsolute
}

// axisOfLeastPenetration returns the face index of a (the polygon under
// test) with the largest (least negative) separation against b, and that
// separation. A non-negative result means the polygons are disjoint along
// that axis.
func axisOfLeastPenetration(a *actor.Body, ap *actor.Polygon, b *actor.Body, bp *actor.Polygon) (int, float64) {
	bestDist := math.Inf(-1)
	bestIdx := 0

	for i, faceNormal := range ap.FaceNormals {
		nWorld := a.Transform.Rot.MulVec(faceNormal)
		nB := b.Transform.Rot.Transpose().MulVec(nWorld)

		support := supportPoint(bp, vec2.Neg(nB))

		v := a.Transform.Rot.MulVec(ap.Vertices[i])
		v = vec2.Add(v, a.Transform.Pos)
		v = vec2.Sub(v, b.Transform.Pos)
		v = b.Transform.Rot.Transpose().MulVec(v)

		d := vec2.Dot(nB, vec2.Sub(support, v))
		if d > bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return bestIdx, bestDist
}

// supportPoint returns the vertex of p (in its own model space) that
// maximizes the dot product with d.
func supportPoint(p *actor.Polygon, d vec2.V) vec2.V {
	best := p.Vertices[0]
	bestProj := vec2.Dot(best, d)
	for _, v := range p.Vertices[1:] {
		proj := vec2.Dot(v, d)
		if proj > bestProj {
			bestProj = proj
			best = v
		}
	}
	return best
}

// incidentFace picks the face of inc whose outward normal is most
// anti-aligned with the reference face's world-space normal, and returns its
// two vertices in world space.
func incidentFace(refBody *actor.Body, refShape *actor.Polygon, refFace int, incBody *actor.Body, incShape *actor.Polygon) (vec2.V, vec2.V) {
	refNormalWorld := refBody.Transform.Rot.MulVec(refShape.FaceNormals[refFace])
	refNormalInc := incBody.Transform.Rot.Transpose().MulVec(refNormalWorld)

	incFace := 0
	minDot := math.Inf(1)
	for i, n := range incShape.FaceNormals {
		d := vec2.Dot(refNormalInc, n)
		if d < minDot {
			minDot = d
			incFace = i
		}
	}

	n := len(incShape.Vertices)
	v1 := vec2.Add(incBody.Transform.Pos, incBody.Transform.Rot.MulVec(incShape.Vertices[incFace]))
	v2 := vec2.Add(incBody.Transform.Pos, incBody.Transform.Rot.MulVec(incShape.Vertices[(incFace+1)%n]))
	return v1, v2
}

// clip is the Sutherland-Hodgman edge clip against the half-plane n.x = c:
// points with n.p - c <= 0 survive, and the edge is split where it crosses
// the plane. Only a result of exactly 2 points is useful to the caller;
// fewer means the edge lies entirely outside the plane.
func clip(n vec2.V, c float64, p1, p2 vec2.V) ([2]vec2.V, int) {
	var out [2]vec2.V
	count := 0

	d1 := vec2.Dot(n, p1) - c
	d2 := vec2.Dot(n, p2) - c

	if d1 <= 0 {
		out[count] = p1
		count++
	}
	if d2 <= 0 {
		out[count] = p2
		count++
	}
	if d1*d2 < 0 {
		t := d1 / (d1 - d2)
		out[count] = vec2.Add(p1, vec2.Scale(vec2.Sub(p2, p1), t))
		count++
	}

	return out, count
}
