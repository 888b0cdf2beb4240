package xlsbook

// In-memory Grid/Page fakes for testing the core without a real
// container format behind it.

type memCell struct {
	value   string
	formula string
	style   string
}

type memPage struct {
	name   string
	seed   [][]string // pre-existing content
	cells  map[[2]int]memCell
	widths map[int]float64
}

func newMemPage(name string, seed ...[]string) *memPage {
	return &memPage{
		name:   name,
		seed:   seed,
		cells:  make(map[[2]int]memCell),
		widths: make(map[int]float64),
	}
}

func (p *memPage) Name() string { return p.name }

func (p *memPage) RowCount() (int, error) {
	n := len(p.seed)
	for k := range p.cells {
		if k[0]+1 > n {
			n = k[0] + 1
		}
	}
	return n, nil
}

func (p *memPage) Row(row int) ([]string, error) {
	if row < 0 || row >= len(p.seed) {
		return nil, nil
	}
	return p.seed[row], nil
}

func (p *memPage) SetValue(row, col int, value string, style StyleIntent) error {
	p.cells[[2]int{row, col}] = memCell{value: value, style: style.Descriptor()}
	return nil
}

func (p *memPage) SetFormula(row, col int, formula string, style StyleIntent) error {
	p.cells[[2]int{row, col}] = memCell{formula: formula, style: style.Descriptor()}
	return nil
}

func (p *memPage) SetColWidth(col int, width float64) error {
	p.widths[col] = width
	return nil
}

type memGrid struct {
	pages       map[string]*memPage
	order       []string
	persistedTo string
	persistErr  error
}

func newMemGrid(pages ...*memPage) *memGrid {
	g := &memGrid{pages: make(map[string]*memPage)}
	for _, p := range pages {
		g.pages[p.name] = p
		g.order = append(g.order, p.name)
	}
	return g
}

func (g *memGrid) PageNames() []string { return g.order }

func (g *memGrid) Page(title string) (Page, error) {
	if p, ok := g.pages[title]; ok {
		return p, nil
	}
	p := newMemPage(title)
	g.pages[title] = p
	g.order = append(g.order, title)
	return p, nil
}

func (g *memGrid) Persist(path string) error {
	if g.persistErr != nil {
		return g.persistErr
	}
	g.persistedTo = path
	return nil
}
