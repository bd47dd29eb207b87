package site

// pageScript runs the browser-only behavior: beacons, the header scroll
// rule, the mobile menu, section swipes, orientation and network reporting
// and web vitals. Carousel state is driven over Datastar and is not handled
// here.
const pageScript = `(function () {
  var cfgEl = document.getElementById("` + ConfigScriptID + `");
  var cfg = cfgEl ? JSON.parse(cfgEl.textContent) : {};
  function track(name, data) {
    var ev = Object.assign({
      name: name,
      variant: cfg.variant,
      viewport: window.innerWidth + "x" + window.innerHeight
    }, data || {});
    var body = JSON.stringify(ev);
    if (navigator.sendBeacon && navigator.sendBeacon("/api/events", body)) { return; }
    fetch("/api/events", { method: "POST", body: body, headers: { "Content-Type": "application/json" }, keepalive: true });
  }
  window.track = track;

  var header = document.getElementById("mainHeader");
  var lastY = window.scrollY, ticking = false;
  window.addEventListener("scroll", function () {
    if (ticking) { return; }
    ticking = true;
    requestAnimationFrame(function () {
      var y = window.scrollY;
      header.classList.toggle("scrolled", y > cfg.headerScrolledAt);
      header.classList.toggle("hidden", cfg.headerHideAfter > 0 && y > lastY && y > cfg.headerHideAfter);
      lastY = y;
      ticking = false;
    });
  }, { passive: true });

  var toggle = document.querySelector(".menu-toggle");
  var nav = document.getElementById("` + MobileNavID + `");
  var overlay = document.querySelector(".nav-overlay");
  var menuOpen = false;
  function setMenu(open) {
    if (!toggle || !nav || open === menuOpen) { return; }
    menuOpen = open;
    toggle.setAttribute("aria-expanded", String(open));
    nav.setAttribute("aria-hidden", String(!open));
    nav.classList.toggle("open", open);
    if (overlay) { overlay.classList.toggle("active", open); }
    document.body.style.overflow = open ? "hidden" : "";
  }
  if (toggle && nav) {
    toggle.addEventListener("click", function () { setMenu(!menuOpen); });
    if (overlay) { overlay.addEventListener("click", function () { setMenu(false); }); }
    var close = nav.querySelector(".nav-close");
    if (close) { close.addEventListener("click", function () { setMenu(false); }); }
    nav.querySelectorAll(".nav-link").forEach(function (a) {
      a.addEventListener("click", function () { setMenu(false); });
    });
    document.addEventListener("keydown", function (e) {
      if (e.key === "Escape") { setMenu(false); }
    });
    var mx = 0;
    nav.addEventListener("touchstart", function (e) { mx = e.touches[0].clientX; }, { passive: true });
    nav.addEventListener("touchmove", function (e) {
      if (menuOpen && e.touches[0].clientX - mx > cfg.swipeThreshold) { setMenu(false); }
    }, { passive: true });
  }
  function markActive(id) {
    document.querySelectorAll(".nav-link").forEach(function (a) {
      a.classList.toggle("active", a.getAttribute("data-section") === id);
    });
  }

  var sections = cfg.sections || [];
  var current = 0;
  if ("IntersectionObserver" in window) {
    var seen = {};
    var io = new IntersectionObserver(function (entries) {
      entries.forEach(function (e) {
        if (!e.isIntersecting) { return; }
        e.target.classList.add("visible");
        var i = sections.indexOf(e.target.id);
        if (i >= 0) { current = i; markActive(e.target.id); }
        if (!seen[e.target.id]) {
          seen[e.target.id] = true;
          track("virtual_pageview", { section: e.target.id });
        }
      });
    }, { threshold: 0.1 });
    document.querySelectorAll("section").forEach(function (s) { io.observe(s); });
  }

  if (cfg.swipeSections && sections.length) {
    var sx = 0, sy = 0, started = 0;
    document.addEventListener("touchstart", function (e) {
      sx = e.touches[0].clientX; sy = e.touches[0].clientY; started = Date.now();
    }, { passive: true });
    document.addEventListener("touchend", function (e) {
      var held = Date.now() - started;
      if (held > 1000) { track("long_interaction", { metrics: { duration: held } }); }
      if (!sx && !sy) { return; }
      var dx = sx - e.changedTouches[0].clientX, dy = sy - e.changedTouches[0].clientY;
      sx = 0; sy = 0;
      if (Math.abs(dx) <= Math.abs(dy) || Math.abs(dx) <= cfg.swipeThreshold) { return; }
      var n = sections.length;
      current = ((current + (dx > 0 ? 1 : -1)) % n + n) % n;
      var el = document.getElementById(sections[current]);
      if (el) {
        var offset = header ? header.offsetHeight : 0;
        window.scrollTo({ top: el.offsetTop - offset, behavior: "smooth" });
      }
    }, { passive: true });
  }

  function orientation() {
    var landscape = window.innerWidth > window.innerHeight;
    document.body.classList.toggle("landscape", landscape);
    return landscape ? "landscape" : "portrait";
  }
  orientation();
  window.addEventListener("orientationchange", function () {
    setTimeout(function () { track("orientation_change", { context: orientation() }); }, 300);
  });
  window.addEventListener("online", function () { track("network_status", { context: "online" }); });
  window.addEventListener("offline", function () { track("network_status", { context: "offline" }); });

  if (cfg.performanceLog) {
    window.addEventListener("load", function () {
      setTimeout(function () {
        var t = performance.timing;
        track("performance_metrics", { metrics: {
          loadTime: t.loadEventEnd - t.navigationStart,
          domReady: t.domContentLoadedEventEnd - t.navigationStart
        } });
      }, 0);
    });
  }

  var vitals = {}, cls = 0;
  function observe(type, fn) {
    try {
      new PerformanceObserver(function (list) { list.getEntries().forEach(fn); })
        .observe({ type: type, buffered: true });
    } catch (e) {}
  }
  if ("PerformanceObserver" in window) {
    observe("largest-contentful-paint", function (e) { vitals.lcp = Math.round(e.startTime); });
    observe("first-input", function (e) { vitals.fid = Math.round(e.processingStart - e.startTime); });
    observe("layout-shift", function (e) {
      if (!e.hadRecentInput) { cls += e.value; vitals.cls = Math.round(cls * 1000) / 1000; }
    });
    var sent = false;
    document.addEventListener("visibilitychange", function () {
      if (sent || document.visibilityState !== "hidden" || !Object.keys(vitals).length) { return; }
      sent = true;
      track("performance_metrics", { context: "web_vitals", metrics: vitals });
    });
  }

  if (cfg.serviceWorker && "serviceWorker" in navigator) {
    window.addEventListener("load", function () {
      navigator.serviceWorker.register(cfg.serviceWorker).catch(function () {});
    });
  }
})();`
