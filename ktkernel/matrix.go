package ktkernel

import "fmt"

// Matrix is a dense, square, row-major complex matrix: entry (i,j) lives
// at data[i*n+j]. It generalizes the reference implementation's
// Eigen::Matrix<Complex,...,RowMajor> to a flat complex128 slice.
type Matrix struct {
	n    int
	data []complex128
}

// NewMatrix allocates a zeroed n x n Matrix.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMatrix: %w", ErrInvalidArgument)
	}
	return &Matrix{n: n, data: make([]complex128, n*n)}, nil
}

// Size returns the matrix's row/column count.
func (m *Matrix) Size() int { return m.n }

// At returns entry (i,j).
func (m *Matrix) At(i, j int) complex128 { return m.data[i*m.n+j] }

// Set assigns entry (i,j).
func (m *Matrix) Set(i, j int, value complex128) { m.data[i*m.n+j] = value }

// lu performs Doolittle LU decomposition on m without pivoting: rows are
// never exchanged, so a zero pivot returns ErrSingular even for a
// non-singular matrix whose factorisation a row exchange would allow.
func lu(m *Matrix) (l, u *Matrix, err error) {
	n := m.n
	l, err = NewMatrix(n)
	if err != nil {
		return nil, nil, fmt.Errorf("lu: %w", err)
	}
	u, err = NewMatrix(n)
	if err != nil {
		return nil, nil, fmt.Errorf("lu: %w", err)
	}
	for i := 0; i < n; i++ {
		l.Set(i, i, 1)
	}

	for i := 0; i < n; i++ {
		// Row i of U, columns j >= i.
		for j := i; j < n; j++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += l.At(i, k) * u.At(k, j)
			}
			u.Set(i, j, m.At(i, j)-sum)
		}
		// Column i of L, rows j > i.
		pivot := u.At(i, i)
		if pivot == 0 {
			return nil, nil, fmt.Errorf("lu: zero pivot at %d: %w", i, ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += l.At(j, k) * u.At(k, i)
			}
			l.Set(j, i, (m.At(j, i)-sum)/pivot)
		}
	}
	return l, u, nil
}

// Solve returns x such that m*x = b, via LU decomposition followed by
// forward and backward substitution.
func Solve(m *Matrix, b []complex128) ([]complex128, error) {
	n := m.n
	if len(b) != n {
		return nil, fmt.Errorf("Solve: right-hand side has length %d, want %d: %w", len(b), n, ErrInvalidArgument)
	}
	l, u, err := lu(m)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	y := make([]complex128, n)
	for i := 0; i < n; i++ {
		sum := complex128(0)
		for k := 0; k < i; k++ {
			sum += l.At(i, k) * y[k]
		}
		y[i] = b[i] - sum
	}

	x := make([]complex128, n)
	for i := n - 1; i >= 0; i-- {
		sum := complex128(0)
		for k := i + 1; k < n; k++ {
			sum += u.At(i, k) * x[k]
		}
		pivot := u.At(i, i)
		if pivot == 0 {
			return nil, fmt.Errorf("Solve: zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}
	return x, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m, nil
}

// Sub returns a - b, entrywise. Both matrices must have the same size.
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.n != b.n {
		return nil, fmt.Errorf("Sub: size mismatch %dx%d vs %dx%d: %w", a.n, a.n, b.n, b.n, ErrInvalidArgument)
	}
	out, err := NewMatrix(a.n)
	if err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out, nil
}

// MulVec returns m*v.
func (m *Matrix) MulVec(v []complex128) ([]complex128, error) {
	if len(v) != m.n {
		return nil, fmt.Errorf("MulVec: vector has length %d, want %d: %w", len(v), m.n, ErrInvalidArgument)
	}
	out := make([]complex128, m.n)
	for i := 0; i < m.n; i++ {
		var sum complex128
		for j := 0; j < m.n; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out, nil
}
