package health

import (
	"encoding/json"
	"html"
	"sort"
	"strconv"
	"strings"
)

// Dashboard headlines.
const (
	HeadlineOK    = "All Systems Operational"
	HeadlineIssue = "System Issues Detected"
)

// RenderDashboardHTML returns the status page served at GET /health. The page polls
// /health/json a few times, then waits for a manual refresh.
func RenderDashboardHTML(health Result) string {
	b, _ := json.Marshal(health)
	// embedded in a JS template literal
	jsonStr := string(b)
	jsonStr = strings.ReplaceAll(jsonStr, "\\", "\\\\")
	jsonStr = strings.ReplaceAll(jsonStr, "`", "\\`")
	jsonStr = strings.ReplaceAll(jsonStr, "$", "\\$")
	jsonStr = strings.ReplaceAll(jsonStr, "</", "<\\/")

	headline := HeadlineOK
	if health.Status != OverallOK {
		headline = HeadlineIssue
	}

	lastMethod, lastPath, lastIP := "-", "-", "-"
	if lr := health.Traffic.LastRequest; lr != nil {
		lastMethod, lastPath, lastIP = lr.Method, lr.Path, lr.IP
	}

	t := health.Traffic
	e := html.EscapeString
	itoa := strconv.Itoa

	return `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Hang Ky Investment Group · Site Status</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    :root { --navy: #0B1F3A; --gold: #B8913A; --bg: #F6F5F1; --muted: #64748b; }
    * { box-sizing: border-box; }
    body { background: var(--bg); color: var(--navy); font-family: Georgia, 'Times New Roman', serif; margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
    .container { width: 100%; max-width: 1100px; padding: 40px 20px; }
    header { display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 20px; }
    .brand { font-size: 18px; letter-spacing: 3px; text-transform: uppercase; color: var(--gold); }
    h1 { font-size: clamp(30px, 5vw, 52px); margin: 0 0 10px; }
    h1.issue { color: #B91C1C; }
    .subtext { color: var(--muted); margin-bottom: 30px; }
    .card { background: #fff; border: 1px solid rgba(11,31,58,0.08); border-radius: 6px; overflow: hidden; }
    .grid { display: grid; grid-template-columns: repeat(3, 1fr); }
    .col { padding: 36px; border-right: 1px solid rgba(11,31,58,0.06); }
    .col:last-child { border-right: none; }
    .label { text-transform: uppercase; font-size: 11px; letter-spacing: 2px; color: var(--muted); margin-bottom: 20px; font-family: sans-serif; }
    .big { font-size: 40px; margin-bottom: 10px; }
    .row { display: flex; justify-content: space-between; padding: 7px 0; border-bottom: 1px solid rgba(11,31,58,0.04); font-family: sans-serif; font-size: 14px; }
    .row:last-child { border-bottom: none; }
    .pill { padding: 3px 10px; border-radius: 4px; font-size: 11px; font-weight: 700; }
    .ok { background: rgba(184,145,58,0.12); color: var(--gold); }
    .err { background: rgba(185,28,28,0.08); color: #B91C1C; }
    .footer-req { background: rgba(11,31,58,0.03); padding: 16px 36px; display: flex; justify-content: space-between; font-family: monospace; font-size: 13px; }
    .actions { margin-top: 24px; display: flex; gap: 14px; align-items: center; font-family: sans-serif; font-size: 13px; color: var(--muted); }
    button { background: var(--navy); color: #fff; border: none; padding: 8px 18px; border-radius: 4px; cursor: pointer; }
    #btn-refresh { display: none; }
    #error-modal { display: none; position: fixed; inset: 0; background: rgba(11,31,58,0.4); align-items: center; justify-content: center; padding: 20px; }
    .modal { background: #fff; width: 100%; max-width: 700px; border-radius: 6px; padding: 32px; max-height: 80vh; overflow-y: auto; }
    .error-item { border-bottom: 1px solid #f1f5f9; padding: 12px 0; font-size: 13px; font-family: sans-serif; }
    .err-meta { color: var(--gold); font-size: 10px; text-transform: uppercase; margin-bottom: 4px; }
    .err-msg { color: #B91C1C; }
    @media (max-width: 900px) { .grid { grid-template-columns: 1fr; } .col { border-right: none; border-bottom: 1px solid rgba(11,31,58,0.06); } .footer-req { flex-direction: column; gap: 8px; } }
  </style>
</head>
<body>
  <div id="error-modal" onclick="closeErrors()">
    <div class="modal" onclick="event.stopPropagation()">
      <h2>Internal Server Errors (Last 50)</h2>
      <div id="error-list">Loading...</div>
    </div>
  </div>
  <div class="container">
    <header>
      <div class="brand">Hang Ky Investment Group</div>
      <div id="time-display"></div>
    </header>
    <h1 id="headline"` + issueClass(health.Status) + `>` + headline + `</h1>
    <p class="subtext">Site traffic, catalog content and cache connectivity.</p>
    <div class="card">
      <div class="grid">
        <div class="col">
          <div class="label">Traffic</div>
          <div class="big" id="total-req">` + itoa(t.TotalRequests) + `</div>
          <div class="row"><span>Successful</span><span id="success-count">` + itoa(t.SuccessCount) + `</span></div>
          <div class="row"><span>Failed</span><span id="failed-count">` + itoa(t.FailedCount) + `</span></div>
          <div class="row"><span>Success Rate</span><span id="success-rate">` + e(t.SuccessRate) + `%</span></div>
          <div class="row"><span>Avg Latency</span><span id="avg-time">` + e(t.AvgResponseTime) + `ms</span></div>
        </div>
        <div class="col">
          <div class="label">Content</div>
` + contentRows(health.Content) + `        </div>
        <div class="col">
          <div class="label">Runtime</div>
          <div class="big" id="uptime">` + formatUptime(health.Runtime.UptimeSeconds) + `</div>
          <div class="row"><span>Heap Used</span><span id="mem-heap">` + itoa(health.Runtime.Memory.HeapUsed) + ` MB</span></div>
          <div class="row"><span>Goroutines</span><span id="goroutines">` + itoa(health.Runtime.Goroutines) + `</span></div>
          <div class="row"><span>Platform</span><span>` + e(health.Runtime.Platform) + `</span></div>
` + depRows(health.Dependencies) + `        </div>
      </div>
      <div class="footer-req">
        <div>LAST INBOUND <span id="req-method">` + e(lastMethod) + `</span></div>
        <div id="req-path">` + e(lastPath) + `</div>
        <div id="req-ip">` + e(lastIP) + `</div>
      </div>
    </div>
    <div class="actions">
      <button onclick="showErrors()">View Error Log</button>
      <span id="updates-status">Live updates · <span id="count">3</span> refreshes remaining</span>
      <button id="btn-refresh" onclick="tick(true)">Refresh</button>
    </div>
  </div>
  <script>
    let left = 3;
    const esc = (s) => String(s == null ? '' : s).replace(/[&<>"']/g, (c) => ({'&':'&amp;','<':'&lt;','>':'&gt;','"':'&quot;',"'":'&#39;'}[c]));
    const fmt = (s) => { const d = Math.floor(s / 86400); const h = Math.floor((s % 86400) / 3600); const m = Math.floor((s % 3600) / 60); const sec = Math.floor(s % 60); return d > 0 ? d + 'd ' + h + 'h ' + m + 'm' : h + 'h ' + m + 'm ' + sec + 's'; };
    const updateUI = (d) => {
      document.getElementById('time-display').innerText = new Date().toLocaleTimeString();
      document.getElementById('total-req').innerText = d.traffic.totalRequests;
      document.getElementById('success-count').innerText = d.traffic.successCount;
      document.getElementById('failed-count').innerText = d.traffic.failedCount;
      document.getElementById('success-rate').innerText = d.traffic.successRate + '%';
      document.getElementById('avg-time').innerText = d.traffic.avgResponseTime + 'ms';
      document.getElementById('uptime').innerText = fmt(d.runtime.uptimeSeconds);
      document.getElementById('mem-heap').innerText = d.runtime.memory.heapUsed + ' MB';
      document.getElementById('goroutines').innerText = d.runtime.goroutines;
      if (d.traffic.lastRequest) { document.getElementById('req-method').innerText = d.traffic.lastRequest.method; document.getElementById('req-path').innerText = d.traffic.lastRequest.path; document.getElementById('req-ip').innerText = d.traffic.lastRequest.ip; }
      Object.keys(d.dependencies).forEach((k) => { const p = document.getElementById('dep-' + k); if (!p) return; const s = d.dependencies[k].status; p.className = 'pill ' + (s === 'error' ? 'err' : 'ok'); p.innerText = s; });
      const hl = document.getElementById('headline');
      hl.innerText = d.status === 'ok' ? '` + HeadlineOK + `' : '` + HeadlineIssue + `';
      hl.className = d.status === 'ok' ? '' : 'issue';
    };
    async function tick(manual) { if (!manual && left <= 0) return; try { const r = await fetch('/health/json'); updateUI(await r.json()); if (!manual) { left--; document.getElementById('count').innerText = left; if (left <= 0) { document.getElementById('updates-status').innerText = 'Updates paused'; document.getElementById('btn-refresh').style.display = 'inline-block'; } } } catch (e) {} }
    async function showErrors() { const modal = document.getElementById('error-modal'); const list = document.getElementById('error-list'); modal.style.display = 'flex'; list.innerText = 'Fetching logs...'; try { const r = await fetch('/health/errors'); const errors = await r.json(); if (errors.length === 0) { list.innerText = 'No internal errors recorded.'; return; } list.innerHTML = errors.map((x) => '<div class="error-item"><div class="err-meta">' + esc(new Date(x.time).toLocaleString()) + ' ' + esc(x.method) + ' ' + esc(x.path) + ' ' + esc(x.trace_id) + '</div><div class="err-msg">' + esc(x.message) + '</div></div>').join(''); } catch (e) { list.innerText = 'Error loading logs.'; } }
    function closeErrors() { document.getElementById('error-modal').style.display = 'none'; }
    setTimeout(() => { updateUI(JSON.parse(` + "`" + jsonStr + "`" + `)); }, 100);
    setInterval(() => tick(), 10000);
  </script>
</body>
</html>`
}

func issueClass(status string) string {
	if status == OverallOK {
		return ""
	}
	return ` class="issue"`
}

func contentRows(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(`          <div class="row"><span>` + html.EscapeString(k) + `</span><span id="content-` + html.EscapeString(k) + `">` + strconv.Itoa(counts[k]) + "</span></div>\n")
	}
	return sb.String()
}

func depRows(deps map[string]DepStatus) string {
	keys := make([]string, 0, len(deps))
	for k := range deps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for _, k := range keys {
		d := deps[k]
		class := "ok"
		if d.Status == StatusError {
			class = "err"
		}
		ping := ""
		if d.PingMs != nil {
			ping = " (" + strconv.FormatInt(*d.PingMs, 10) + " ms)"
		}
		sb.WriteString(`          <div class="row"><span>` + html.EscapeString(k) + ping + `</span><span id="dep-` + html.EscapeString(k) + `" class="pill ` + class + `">` + html.EscapeString(d.Status) + "</span></div>\n")
	}
	return sb.String()
}

func formatUptime(sec int64) string {
	d := sec / 86400
	h := (sec % 86400) / 3600
	m := (sec % 3600) / 60
	s := sec % 60
	f := func(n int64) string { return strconv.FormatInt(n, 10) }
	if d > 0 {
		return f(d) + "d " + f(h) + "h " + f(m) + "m"
	}
	return f(h) + "h " + f(m) + "m " + f(s) + "s"
}
