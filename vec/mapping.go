package vec

// Map returns the vector with f applied to each component.
func (v Vector[U]) Map(f func(float64) float64) Vector[U] {
	return New[U](f(v.r.X), f(v.r.Y), f(v.r.Z))
}

// Map2 returns the vector whose components are f applied pairwise to
// the components of v and u.
func (v Vector[U]) Map2(u Vector[U], f func(a, b float64) float64) Vector[U] {
	return New[U](f(v.r.X, u.r.X), f(v.r.Y, u.r.Y), f(v.r.Z, u.r.Z))
}

// Mapi is Map with the component index (0 for x, 1 for y, 2 for z)
// passed to f.
func (v Vector[U]) Mapi(f func(i int, a float64) float64) Vector[U] {
	return New[U](f(0, v.r.X), f(1, v.r.Y), f(2, v.r.Z))
}

// Mapi2 is Map2 with the component index passed to f.
func (v Vector[U]) Mapi2(u Vector[U], f func(i int, a, b float64) float64) Vector[U] {
	return New[U](f(0, v.r.X, u.r.X), f(1, v.r.Y, u.r.Y), f(2, v.r.Z, u.r.Z))
}

// MapEach applies a separate function to each component.
func (v Vector[U]) MapEach(fx, fy, fz func(float64) float64) Vector[U] {
	return New[U](fx(v.r.X), fy(v.r.Y), fz(v.r.Z))
}

// Map returns the point with f applied to each coordinate.
func (p Point[U]) Map(f func(float64) float64) Point[U] {
	return At(p.v.Map(f))
}

// Map2 returns the point whose coordinates are f applied pairwise to
// the coordinates of p and q.
func (p Point[U]) Map2(q Point[U], f func(a, b float64) float64) Point[U] {
	return At(p.v.Map2(q.v, f))
}

// Mapi is Map with the coordinate index passed to f.
func (p Point[U]) Mapi(f func(i int, a float64) float64) Point[U] {
	return At(p.v.Mapi(f))
}

// Mapi2 is Map2 with the coordinate index passed to f.
func (p Point[U]) Mapi2(q Point[U], f func(i int, a, b float64) float64) Point[U] {
	return At(p.v.Mapi2(q.v, f))
}

// MapEach applies a separate function to each coordinate.
func (p Point[U]) MapEach(fx, fy, fz func(float64) float64) Point[U] {
	return At(p.v.MapEach(fx, fy, fz))
}
