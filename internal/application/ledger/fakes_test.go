package ledger_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/softfruver/fruver-ledger/internal/domain/entity"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los repositorios y del TxRunner. El runner falso toma
// una instantánea del estado antes del callback y la restaura si falla, para
// poder afirmar atomicidad sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type ventaCab struct {
	clienteID int64
	fecha     time.Time
	esCredito bool
}

type fakeVentaRepo struct {
	nextID    int64
	cabeceras map[int64]ventaCab
	items     map[int64][]entity.VentaItem
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		nextID:    1,
		cabeceras: map[int64]ventaCab{},
		items:     map[int64][]entity.VentaItem{},
	}
}

func (f *fakeVentaRepo) snapshot() *fakeVentaRepo {
	c := newFakeVentaRepo()
	c.nextID = f.nextID
	for id, cab := range f.cabeceras {
		c.cabeceras[id] = cab
	}
	for id, its := range f.items {
		c.items[id] = append([]entity.VentaItem(nil), its...)
	}
	return c
}

func (f *fakeVentaRepo) restore(s *fakeVentaRepo) {
	f.nextID = s.nextID
	f.cabeceras = s.cabeceras
	f.items = s.items
}

func (f *fakeVentaRepo) InsertCabecera(clienteID int64, fecha time.Time, esCredito bool) (int64, error) {
	id := f.nextID
	f.nextID++
	f.cabeceras[id] = ventaCab{clienteID: clienteID, fecha: fecha, esCredito: esCredito}
	return id, nil
}

func (f *fakeVentaRepo) UpdateCabecera(ventaID, clienteID int64, fecha time.Time, esCredito bool) (int64, error) {
	if _, ok := f.cabeceras[ventaID]; !ok {
		return 0, nil
	}
	f.cabeceras[ventaID] = ventaCab{clienteID: clienteID, fecha: fecha, esCredito: esCredito}
	return 1, nil
}

func (f *fakeVentaRepo) InsertItems(ventaID int64, items []entity.VentaItem) error {
	f.items[ventaID] = append(f.items[ventaID], items...)
	return nil
}

func (f *fakeVentaRepo) DeleteItems(ventaID int64) (int64, error) {
	n := int64(len(f.items[ventaID]))
	delete(f.items, ventaID)
	return n, nil
}

func (f *fakeVentaRepo) DeleteCabecera(ventaID int64) error {
	delete(f.cabeceras, ventaID)
	return nil
}

func (f *fakeVentaRepo) ObtenerCabecera(ventaID int64) (*entity.VentaCabecera, error) {
	cab, ok := f.cabeceras[ventaID]
	if !ok {
		return nil, nil
	}
	total := decimal.Zero
	for _, it := range f.items[ventaID] {
		total = total.Add(it.CantidadKg.Mul(it.PrecioUnit))
	}
	return &entity.VentaCabecera{
		ID:        ventaID,
		Fecha:     cab.fecha,
		ClienteID: cab.clienteID,
		Cliente:   "cliente de prueba",
		Total:     total,
		EsCredito: cab.esCredito,
	}, nil
}

func (f *fakeVentaRepo) ObtenerDetalle(ventaID int64) ([]entity.VentaDetalleItem, error) {
	var out []entity.VentaDetalleItem
	for _, it := range f.items[ventaID] {
		out = append(out, entity.VentaDetalleItem{
			ProductoID: it.ProductoID,
			Producto:   "producto de prueba",
			CantidadKg: it.CantidadKg,
			PrecioUnit: it.PrecioUnit,
		})
	}
	return out, nil
}

func (f *fakeVentaRepo) Buscar(desde, hasta *time.Time, clienteNombre string) ([]entity.VentaListado, error) {
	return nil, nil
}

// ── compras ──────────────────────────────────────────────────────────────────

type compraCab struct {
	proveedorID int64
	fecha       time.Time
}

type fakeCompraRepo struct {
	nextID    int64
	cabeceras map[int64]compraCab
	items     map[int64][]entity.CompraItem
}

func newFakeCompraRepo() *fakeCompraRepo {
	return &fakeCompraRepo{
		nextID:    1,
		cabeceras: map[int64]compraCab{},
		items:     map[int64][]entity.CompraItem{},
	}
}

func (f *fakeCompraRepo) snapshot() *fakeCompraRepo {
	c := newFakeCompraRepo()
	c.nextID = f.nextID
	for id, cab := range f.cabeceras {
		c.cabeceras[id] = cab
	}
	for id, its := range f.items {
		c.items[id] = append([]entity.CompraItem(nil), its...)
	}
	return c
}

func (f *fakeCompraRepo) restore(s *fakeCompraRepo) {
	f.nextID = s.nextID
	f.cabeceras = s.cabeceras
	f.items = s.items
}

func (f *fakeCompraRepo) InsertCabecera(proveedorID int64, fecha time.Time) (int64, error) {
	id := f.nextID
	f.nextID++
	f.cabeceras[id] = compraCab{proveedorID: proveedorID, fecha: fecha}
	return id, nil
}

func (f *fakeCompraRepo) UpdateCabecera(compraID, proveedorID int64, fecha time.Time) (int64, error) {
	if _, ok := f.cabeceras[compraID]; !ok {
		return 0, nil
	}
	f.cabeceras[compraID] = compraCab{proveedorID: proveedorID, fecha: fecha}
	return 1, nil
}

func (f *fakeCompraRepo) InsertItems(compraID int64, items []entity.CompraItem) error {
	f.items[compraID] = append(f.items[compraID], items...)
	return nil
}

func (f *fakeCompraRepo) DeleteItems(compraID int64) (int64, error) {
	n := int64(len(f.items[compraID]))
	delete(f.items, compraID)
	return n, nil
}

func (f *fakeCompraRepo) DeleteCabecera(compraID int64) error {
	delete(f.cabeceras, compraID)
	return nil
}

func (f *fakeCompraRepo) ObtenerCabecera(compraID int64) (*entity.CompraCabecera, error) {
	cab, ok := f.cabeceras[compraID]
	if !ok {
		return nil, nil
	}
	total := decimal.Zero
	for _, it := range f.items[compraID] {
		total = total.Add(it.CantidadKg.Mul(it.PrecioUnit))
	}
	return &entity.CompraCabecera{
		ID:          compraID,
		Fecha:       cab.fecha,
		ProveedorID: cab.proveedorID,
		Proveedor:   "proveedor de prueba",
		Total:       total,
	}, nil
}

func (f *fakeCompraRepo) ObtenerDetalle(compraID int64) ([]entity.CompraDetalleItem, error) {
	var out []entity.CompraDetalleItem
	for _, it := range f.items[compraID] {
		out = append(out, entity.CompraDetalleItem{
			ProductoID: it.ProductoID,
			Producto:   "producto de prueba",
			CantidadKg: it.CantidadKg,
			PrecioUnit: it.PrecioUnit,
		})
	}
	return out, nil
}

func (f *fakeCompraRepo) Buscar(desde, hasta *time.Time, proveedorNombre string) ([]entity.CompraListado, error) {
	return nil, nil
}

// ── pagos ────────────────────────────────────────────────────────────────────

type pagoRow struct {
	refID  int64
	fecha  time.Time
	monto  decimal.Decimal
	metodo string
}

type fakePagoRepo struct {
	nextID         int64
	pagosCliente   map[int64]pagoRow
	pagosProveedor map[int64]pagoRow
	metodoLabels   []string
	metodoErr      error
}

func newFakePagoRepo() *fakePagoRepo {
	return &fakePagoRepo{
		nextID:         1,
		pagosCliente:   map[int64]pagoRow{},
		pagosProveedor: map[int64]pagoRow{},
	}
}

func (f *fakePagoRepo) snapshot() *fakePagoRepo {
	c := newFakePagoRepo()
	c.nextID = f.nextID
	for id, p := range f.pagosCliente {
		c.pagosCliente[id] = p
	}
	for id, p := range f.pagosProveedor {
		c.pagosProveedor[id] = p
	}
	return c
}

func (f *fakePagoRepo) restore(s *fakePagoRepo) {
	f.nextID = s.nextID
	f.pagosCliente = s.pagosCliente
	f.pagosProveedor = s.pagosProveedor
}

func (f *fakePagoRepo) InsertPagoCliente(clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.pagosCliente[id] = pagoRow{refID: clienteID, fecha: fecha, monto: monto, metodo: metodo}
	return id, nil
}

func (f *fakePagoRepo) InsertPagoProveedor(proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	id := f.nextID
	f.nextID++
	f.pagosProveedor[id] = pagoRow{refID: proveedorID, fecha: fecha, monto: monto, metodo: metodo}
	return id, nil
}

func (f *fakePagoRepo) UpdatePagoCliente(id, clienteID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	if _, ok := f.pagosCliente[id]; !ok {
		return 0, nil
	}
	f.pagosCliente[id] = pagoRow{refID: clienteID, fecha: fecha, monto: monto, metodo: metodo}
	return 1, nil
}

func (f *fakePagoRepo) UpdatePagoProveedor(id, proveedorID int64, fecha time.Time, monto decimal.Decimal, metodo string) (int64, error) {
	if _, ok := f.pagosProveedor[id]; !ok {
		return 0, nil
	}
	f.pagosProveedor[id] = pagoRow{refID: proveedorID, fecha: fecha, monto: monto, metodo: metodo}
	return 1, nil
}

func (f *fakePagoRepo) DeletePagoCliente(id int64) error {
	delete(f.pagosCliente, id)
	return nil
}

func (f *fakePagoRepo) DeletePagoProveedor(id int64) error {
	delete(f.pagosProveedor, id)
	return nil
}

func (f *fakePagoRepo) TipoPorID(id int64) (string, error) {
	if _, ok := f.pagosCliente[id]; ok {
		return entity.PagoTipoCliente, nil
	}
	if _, ok := f.pagosProveedor[id]; ok {
		return entity.PagoTipoProveedor, nil
	}
	return "", nil
}

func (f *fakePagoRepo) MetodoLabels() ([]string, error) {
	return f.metodoLabels, f.metodoErr
}

func (f *fakePagoRepo) ObtenerCabecera(id int64) (*entity.PagoCabecera, error) {
	if p, ok := f.pagosCliente[id]; ok {
		return &entity.PagoCabecera{
			ID: id, Fecha: p.fecha, Tipo: entity.PagoTipoCliente,
			RefID: p.refID, RefNombre: "cliente de prueba", Monto: p.monto, Metodo: p.metodo,
		}, nil
	}
	if p, ok := f.pagosProveedor[id]; ok {
		return &entity.PagoCabecera{
			ID: id, Fecha: p.fecha, Tipo: entity.PagoTipoProveedor,
			RefID: p.refID, RefNombre: "proveedor de prueba", Monto: p.monto, Metodo: p.metodo,
		}, nil
	}
	return nil, nil
}

func (f *fakePagoRepo) Buscar(desde, hasta *time.Time, refNombre, tipo string) ([]entity.PagoListado, error) {
	return nil, nil
}

// ── runner ───────────────────────────────────────────────────────────────────

// fakeTx simula transacciones sobre los dobles: instantánea antes, restore al
// fallar. Cuenta los rollbacks para afirmar que sí ocurrieron.
type fakeTx struct {
	ventas    *fakeVentaRepo
	compras   *fakeCompraRepo
	pagos     *fakePagoRepo
	rollbacks int
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		ventas:  newFakeVentaRepo(),
		compras: newFakeCompraRepo(),
		pagos:   newFakePagoRepo(),
	}
}

func (t *fakeTx) RunVentas(ctx context.Context, fn func(repo repository.VentaRepository) error) error {
	snap := t.ventas.snapshot()
	if err := fn(t.ventas); err != nil {
		t.ventas.restore(snap)
		t.rollbacks++
		return err
	}
	return nil
}

func (t *fakeTx) RunCompras(ctx context.Context, fn func(repo repository.CompraRepository) error) error {
	snap := t.compras.snapshot()
	if err := fn(t.compras); err != nil {
		t.compras.restore(snap)
		t.rollbacks++
		return err
	}
	return nil
}

func (t *fakeTx) RunPagos(ctx context.Context, fn func(repo repository.PagoRepository) error) error {
	snap := t.pagos.snapshot()
	if err := fn(t.pagos); err != nil {
		t.pagos.restore(snap)
		t.rollbacks++
		return err
	}
	return nil
}
