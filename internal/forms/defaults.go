package forms

import "taller/internal/core/types"

func money(s string) *types.Money {
	v := types.MustMoney(s)
	return &v
}

var zero = money("0")

func lineFields() []Field {
	return []Field{
		MustField(Select("tipo_item", "Tipo", []Option{
			{Value: "servicio", Label: "Servicio"},
			{Value: "repuesto", Label: "Repuesto"},
		}, Required())),
		MustField(Reference("id_item", "Item", "catalogo", Required())),
		MustField(Number("cantidad", "Cantidad", NumberConfig{Min: zero, Scale: 2}, Required())),
		MustField(Number("precio_unitario", "Precio unitario", NumberConfig{Min: zero, Scale: 2}, ReadOnly())),
	}
}

// DefaultRegistry returns the built-in workshop form definitions.
// Definitions are static; a construction error here is a programming
// mistake and panics at startup.
func DefaultRegistry() *Registry {
	reg := NewRegistry()

	register := func(form Form, err error) {
		if err != nil {
			panic(err)
		}
		if err := reg.Register(form); err != nil {
			panic(err)
		}
	}

	register(NewForm("clientes", "Clientes", []Field{
		MustField(Text("nombre", "Nombre", 200, Required())),
		MustField(Text("nit", "NIT", 20)),
		MustField(Text("telefono", "Teléfono", 20)),
		MustField(Text("email", "Email", 100)),
		MustField(Textarea("direccion", "Dirección", 2)),
	}, nil))

	register(NewForm("vehiculos", "Vehículos", []Field{
		MustField(Reference("id_cliente", "Cliente", "clientes", Required())),
		MustField(Text("placa", "Placa", 15, Required())),
		MustField(Text("marca", "Marca", 50)),
		MustField(Text("modelo", "Modelo", 50)),
		MustField(Number("anio", "Año", NumberConfig{Min: zero, Scale: 0})),
		MustField(Text("color", "Color", 30)),
	}, nil))

	register(NewForm("servicios", "Servicios", []Field{
		MustField(Text("nombre", "Nombre", 200, Required())),
		MustField(Textarea("descripcion", "Descripción", 3)),
		MustField(Number("precio_base", "Precio base", NumberConfig{Min: zero, Scale: 2}, Required())),
		MustField(Checkbox("activo", "Activo")),
	}, nil))

	register(NewForm("repuestos", "Repuestos", []Field{
		MustField(Text("nombre", "Nombre", 200, Required())),
		MustField(Textarea("descripcion", "Descripción", 2)),
		MustField(Number("precio_unitario", "Precio unitario", NumberConfig{Min: zero, Scale: 2}, Required())),
		MustField(Number("stock_actual", "Stock", NumberConfig{Min: zero, Scale: 2}, ReadOnly())),
		MustField(Number("stock_minimo", "Stock mínimo", NumberConfig{Min: zero, Scale: 2})),
		MustField(Text("categoria", "Categoría", 50)),
		MustField(Checkbox("activo", "Activo")),
	}, nil))

	register(NewForm("cotizaciones", "Cotizaciones", []Field{
		MustField(Reference("id_cliente", "Cliente", "clientes", Required())),
		MustField(Reference("id_vehiculo", "Vehículo", "vehiculos")),
		MustField(Date("fecha", "Fecha")),
		MustField(Date("valida_hasta", "Válida hasta")),
		MustField(Number("impuestos", "Impuestos %", NumberConfig{Min: zero, Scale: 2})),
		MustField(Number("descuentos", "Descuentos %", NumberConfig{Min: zero, Scale: 2})),
		MustField(Select("estado", "Estado", []Option{
			{Value: "pendiente", Label: "Pendiente"},
			{Value: "aprobada", Label: "Aprobada"},
			{Value: "rechazada", Label: "Rechazada"},
		})),
		MustField(Textarea("observaciones", "Observaciones", 3)),
	}, lineFields()))

	register(NewForm("facturas", "Facturas", []Field{
		MustField(Reference("id_cliente", "Cliente", "clientes", Required())),
		MustField(Reference("id_vehiculo", "Vehículo", "vehiculos")),
		MustField(Reference("id_forma_pago", "Forma de pago", "formas-pago")),
		MustField(Date("fecha", "Fecha")),
		MustField(Number("impuestos", "Impuestos %", NumberConfig{Min: zero, Scale: 2})),
		MustField(Number("descuentos", "Descuentos %", NumberConfig{Min: zero, Scale: 2})),
		MustField(Select("estado_pago", "Estado de pago", []Option{
			{Value: "pendiente", Label: "Pendiente"},
			{Value: "pagada", Label: "Pagada"},
			{Value: "parcial", Label: "Parcial"},
			{Value: "anulada", Label: "Anulada"},
		})),
		MustField(Textarea("observaciones", "Observaciones", 3)),
	}, lineFields()))

	register(NewForm("tickets", "Tickets de trabajo", []Field{
		MustField(Reference("id_cliente", "Cliente", "clientes", Required())),
		MustField(Reference("id_vehiculo", "Vehículo", "vehiculos", Required())),
		MustField(Reference("id_empleado", "Mecánico", "empleados")),
		MustField(Textarea("problema", "Problema reportado", 3, Required())),
		MustField(Textarea("diagnostico", "Diagnóstico", 3)),
		MustField(Select("estado", "Estado", []Option{
			{Value: "abierto", Label: "Abierto"},
			{Value: "en_proceso", Label: "En proceso"},
			{Value: "completado", Label: "Completado"},
			{Value: "entregado", Label: "Entregado"},
		})),
	}, lineFields()))

	register(NewForm("citas", "Citas", []Field{
		MustField(Reference("id_cliente", "Cliente", "clientes", Required())),
		MustField(Reference("id_vehiculo", "Vehículo", "vehiculos")),
		MustField(Date("fecha_cita", "Fecha y hora", Required())),
		MustField(Textarea("motivo", "Motivo", 2, Required())),
		MustField(Select("estado", "Estado", []Option{
			{Value: "programada", Label: "Programada"},
			{Value: "confirmada", Label: "Confirmada"},
			{Value: "en_proceso", Label: "En proceso"},
			{Value: "completada", Label: "Completada"},
			{Value: "cancelada", Label: "Cancelada"},
		})),
	}, nil))

	return reg
}
