package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akashtandel42/Salesmanagement/pkg/config"
)

// NewPool crea el pool de conexiones PostgreSQL, verifica la conexión con Ping y registra el
// codec NUMERIC -> decimal.Decimal en cada conexión.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg, newIPv4Resolver(cfg.Pool.FallbackDNS))
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// newPoolConfig arma la configuración del pool sin abrir conexiones.
// Con ForceIPv4 el DSN y el dial usan la IPv4 del host (redes sin IPv6).
func newPoolConfig(cfg config.DBConfig, resolver *ipv4Resolver) (*pgxpool.Config, error) {
	dsn := cfg.ConnectionString()
	if cfg.Pool.ForceIPv4 {
		dsn = databaseURLWithIPv4(dsn, resolver)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.Pool.ForceIPv4 {
		poolConfig.ConnConfig.DialFunc = func(ctx context.Context, network, addr string) (net.Conn, error) {
			dialer := &net.Dialer{}
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			ipv4, err := resolver.lookup(ctx, host)
			if err != nil {
				return dialer.DialContext(ctx, network, addr)
			}
			return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
		}
	}

	if cfg.Pool.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Pool.MaxConns
	}
	if cfg.Pool.MinConns > 0 {
		poolConfig.MinConns = cfg.Pool.MinConns
	}
	if cfg.Pool.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.Pool.MaxConnLifetime
	}
	if cfg.Pool.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.Pool.MaxConnIdleTime
	}
	if cfg.Pool.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = cfg.Pool.HealthCheckPeriod
	}

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

// ipv4Resolver resuelve hostnames a IPv4 con el resolver del sistema y, si está configurado,
// con un DNS alternativo.
type ipv4Resolver struct {
	resolvers []*net.Resolver
}

func newIPv4Resolver(fallbackDNS string) *ipv4Resolver {
	r := &ipv4Resolver{resolvers: []*net.Resolver{net.DefaultResolver}}
	if fallbackDNS != "" {
		r.resolvers = append(r.resolvers, &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
				d := net.Dialer{}
				return d.DialContext(ctx, "udp", fallbackDNS)
			},
		})
	}
	return r
}

func (r *ipv4Resolver) lookup(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", fmt.Errorf("%s es IPv6", host)
	}
	var lastErr error
	for _, res := range r.resolvers {
		ips, err := res.LookupIP(ctx, "ip4", host)
		if err != nil {
			lastErr = err
			continue
		}
		for _, ip := range ips {
			if v4 := ip.To4(); v4 != nil {
				return v4.String(), nil
			}
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%s sin IPv4", host)
	}
	return "", lastErr
}

// databaseURLWithIPv4 reemplaza el host de una URL postgres:// por su IPv4. Si no puede
// resolverse, o el DSN no es una URL, lo devuelve sin cambios.
func databaseURLWithIPv4(databaseURL string, resolver *ipv4Resolver) string {
	u, err := url.Parse(databaseURL)
	if err != nil || u.Host == "" {
		return databaseURL
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	ipv4, err := resolver.lookup(context.Background(), u.Hostname())
	if err != nil {
		return databaseURL
	}
	u.Host = net.JoinHostPort(ipv4, port)
	return u.String()
}
